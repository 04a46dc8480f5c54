package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"loyalty_admin/internal/gql"
	"loyalty_admin/internal/loyalty"
	"loyalty_admin/internal/screen"

	"go.uber.org/zap"
)

const genericFetchError = "Something went wrong. Try again."

type column[T any] struct {
	header string
	value  func(T) string
}

// boundScreen erases the pager's type parameter so the REPL can hold
// every screen in one map. The closures are bound by bindList.
type boundScreen struct {
	title      string
	searchable bool

	show   func(ctx context.Context) error
	next   func(ctx context.Context) error
	prev   func(ctx context.Context) error
	search func(ctx context.Context, term string) error
	edit   func(ctx context.Context, id string) error
	create func(ctx context.Context) error
}

func bindList[T any](r *Runner, title string, searchable bool, list screen.ListFunc[T], cols []column[T]) *boundScreen {
	pager := screen.NewPager(title, list, r.cache, r.logger)

	show := func(ctx context.Context) error {
		res, err := pager.Fetch(ctx)
		if err != nil {
			r.logger.Warn("fetch failed", zap.String("screen", title), zap.Error(err))
			fmt.Fprintln(r.out, genericFetchError)
			return nil
		}
		renderResult(r.out, title, res, cols, pager)
		return nil
	}

	bs := &boundScreen{
		title:      title,
		searchable: searchable,
		show:       show,
	}
	bs.next = func(ctx context.Context) error {
		if !pager.HasNext() {
			fmt.Fprintln(r.out, "No next page")
			return nil
		}
		pager.NextPage()
		return show(ctx)
	}
	bs.prev = func(ctx context.Context) error {
		if !pager.HasPrevious() {
			fmt.Fprintln(r.out, "No previous page")
			return nil
		}
		pager.PreviousPage()
		return show(ctx)
	}
	bs.search = func(ctx context.Context, term string) error {
		if !searchable {
			fmt.Fprintf(r.out, "%s does not support search\n", title)
			return nil
		}
		pager.SetSearch(term)
		return show(ctx)
	}
	bs.edit = func(_ context.Context, _ string) error {
		fmt.Fprintf(r.out, "%s is read-only\n", title)
		return nil
	}
	bs.create = func(_ context.Context) error {
		fmt.Fprintf(r.out, "%s is read-only\n", title)
		return nil
	}
	return bs
}

func renderResult[T any](out io.Writer, title string, res gql.Result[gql.Page[T]], cols []column[T], pager *screen.Pager[T]) {
	switch {
	case res.Validation != nil:
		fmt.Fprintln(out, "The request did not pass validation:")
		for _, fe := range res.Validation.Errors {
			fmt.Fprintf(out, "- %s: %s\n", fe.Field, fe.Message)
		}
	case res.General != nil:
		fmt.Fprintf(out, "Error %d: %s\n", res.General.Code, res.General.Message)
	case res.Value != nil:
		renderTable(out, title, *res.Value, cols, pager)
	default:
		fmt.Fprintln(out, genericFetchError)
	}
}

func renderTable[T any](out io.Writer, title string, page gql.Page[T], cols []column[T], pager *screen.Pager[T]) {
	fmt.Fprintf(out, "%s (%d total)\n", title, page.Total)
	if len(page.Items) == 0 {
		fmt.Fprintln(out, "(no rows)")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, col := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col.header)
	}
	fmt.Fprintln(tw)
	for _, item := range page.Items {
		for i, col := range cols {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, col.value(item))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	switch {
	case pager.HasNext() && pager.HasPrevious():
		fmt.Fprintln(out, "(next, prev)")
	case pager.HasNext():
		fmt.Fprintln(out, "(next)")
	case pager.HasPrevious():
		fmt.Fprintln(out, "(prev)")
	}
}

func buildScreens(r *Runner) map[string]*boundScreen {
	screens := map[string]*boundScreen{}

	users := bindList(r, "users", true, r.api.Users, userColumns())
	users.edit = r.editUser
	users.create = r.createUser
	screens["users"] = users

	screens["customers"] = bindList(r, "customers", true, r.api.Customers, customerColumns())
	screens["gas-stations"] = bindList(r, "gas-stations", true, r.api.GasStations, gasStationColumns())

	products := bindList(r, "products", true, r.api.Products, productColumns())
	products.edit = r.editProduct
	products.create = r.createProduct
	screens["products"] = products

	margins := bindList(r, "margins", true, r.api.Margins, marginColumns())
	margins.edit = r.editMargin
	margins.create = r.createMargin
	screens["margins"] = margins

	levels := bindList(r, "levels", true, r.api.Levels, levelColumns())
	levels.edit = r.editLevel
	levels.create = r.createLevel
	screens["levels"] = levels

	screens["customer-levels"] = bindList(r, "customer-levels", false,
		func(ctx context.Context, cursor gql.Cursor, _ string) (gql.Result[gql.Page[loyalty.CustomerLevel]], error) {
			return r.api.CustomerLevels(ctx, cursor)
		}, customerLevelColumns())

	benefits := bindList(r, "benefits", true, r.api.Benefits, benefitColumns())
	benefits.edit = r.editBenefit
	benefits.create = r.createBenefit
	screens["benefits"] = benefits

	generated := bindList(r, "benefits-generated", true, r.api.BenefitsGenerated, benefitGeneratedColumns())
	generated.edit = r.editGeneratedBenefit
	screens["benefits-generated"] = generated

	screens["benefits-tickets"] = bindList(r, "benefits-tickets", true, r.api.BenefitsTickets, benefitTicketColumns())
	screens["accumulations"] = bindList(r, "accumulations", true, r.api.Accumulations, accumulationColumns())

	screens["report"] = bindList(r, "report", false,
		func(ctx context.Context, cursor gql.Cursor, _ string) (gql.Result[gql.Page[loyalty.AccumulationReport]], error) {
			return r.api.Report(ctx, cursor)
		}, reportColumns())

	return screens
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
