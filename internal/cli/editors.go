package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"loyalty_admin/internal/forms"
	"loyalty_admin/internal/gql"
	"loyalty_admin/internal/loyalty"
	"loyalty_admin/internal/notify"
	"loyalty_admin/internal/screen"

	"go.uber.org/zap"
)

const marginConflictMessage = "A margin for this product and gas station already exists."

// form reads one field per line. On an update form a blank answer keeps
// the current value; on a create form it leaves the field empty and the
// rule check decides whether that is acceptable.
type form struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (r *Runner) form() *form {
	return &form{scanner: r.scanner, out: r.out}
}

func (f *form) ask(label, current string) string {
	if current != "" {
		fmt.Fprintf(f.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(f.out, "%s: ", label)
	}
	if !f.scanner.Scan() {
		return current
	}
	answer := strings.TrimSpace(f.scanner.Text())
	if answer == "" {
		return current
	}
	return answer
}

func (f *form) askBool(label string, current bool) bool {
	answer := f.ask(label+" (yes/no)", formatBool(current))
	return answer == "yes" || answer == "y" || answer == "true"
}

func (f *form) askFloat(label string, current float64) float64 {
	answer := f.ask(label, formatFloat(current))
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		fmt.Fprintf(f.out, "not a number, keeping %s\n", formatFloat(current))
		return current
	}
	return value
}

// askChange returns nil when the field was left untouched, so update
// inputs only carry what the operator actually changed.
func (f *form) askChange(label, current string) *string {
	fmt.Fprintf(f.out, "%s [%s]: ", label, current)
	if !f.scanner.Scan() {
		return nil
	}
	answer := strings.TrimSpace(f.scanner.Text())
	if answer == "" || answer == current {
		return nil
	}
	return &answer
}

func (f *form) askBoolChange(label string, current bool) *bool {
	answer := f.askChange(label+" (yes/no)", formatBool(current))
	if answer == nil {
		return nil
	}
	value := *answer == "yes" || *answer == "y" || *answer == "true"
	return &value
}

func (f *form) askFloatChange(label string, current float64) *float64 {
	answer := f.askChange(label, formatFloat(current))
	if answer == nil {
		return nil
	}
	value, err := strconv.ParseFloat(*answer, 64)
	if err != nil {
		fmt.Fprintf(f.out, "not a number, keeping %s\n", formatFloat(current))
		return nil
	}
	return &value
}

func (f *form) askIntChange(label string, current int) *int {
	answer := f.askChange(label, strconv.Itoa(current))
	if answer == nil {
		return nil
	}
	value, err := strconv.Atoi(*answer)
	if err != nil {
		fmt.Fprintf(f.out, "not a number, keeping %d\n", current)
		return nil
	}
	return &value
}

func (f *form) askOptionalInt(label string) *int {
	answer := f.ask(label, "")
	if answer == "" {
		return nil
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintf(f.out, "not a number, skipping %s\n", label)
		return nil
	}
	return &value
}

// finishSave closes out a form submission: rule failures and error
// variants keep the form's screen, a saved entity navigates back to the
// owning list, which refetches because the save invalidated the cache.
func finishSave[T any](ctx context.Context, r *Runner, out screen.Outcome[T], err error, success, conflict string) error {
	if err != nil {
		var ruleErr *forms.RuleError
		if errors.As(err, &ruleErr) {
			fmt.Fprintln(r.out, "Some fields are invalid:")
			fields := ruleErr.Fields()
			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(r.out, "- %s %s\n", name, fields[name])
			}
			return nil
		}
		return err
	}

	if !out.Saved {
		switch {
		case out.Result.General != nil && conflict != "":
			fmt.Fprintln(r.out, conflict)
		case out.Result.General != nil:
			fmt.Fprintf(r.out, "Error %d: %s\n", out.Result.General.Code, out.Result.General.Message)
		case out.Result.Validation != nil:
			fmt.Fprintln(r.out, "The request did not pass validation:")
			for _, fe := range out.Result.Validation.Errors {
				fmt.Fprintf(r.out, "- %s: %s\n", fe.Field, fe.Message)
			}
		default:
			fmt.Fprintln(r.out, genericFetchError)
		}
		return nil
	}

	r.notes.OpenSnackbar(notify.SnackbarPayload{Message: success, Severity: "success"})
	r.showSnackbar()
	if r.current != nil {
		return r.current.show(ctx)
	}
	return nil
}

// loadForEdit fetches the entity the form starts from. The loading line
// stands in for the edit screens' loading flag.
func loadForEdit[T any](r *Runner, id string, fetch func() (gql.Result[T], error)) (*T, bool) {
	fmt.Fprintf(r.out, "Loading %s...\n", id)
	res, err := fetch()
	if err != nil {
		r.logger.Warn("edit lookup failed", zap.String("id", id), zap.Error(err))
		fmt.Fprintln(r.out, genericFetchError)
		return nil, false
	}
	if !res.OK() {
		if res.General != nil {
			fmt.Fprintf(r.out, "Error %d: %s\n", res.General.Code, res.General.Message)
		} else {
			fmt.Fprintln(r.out, genericFetchError)
		}
		return nil, false
	}
	return res.Value, true
}

func (r *Runner) createProduct(ctx context.Context) error {
	f := r.form()
	in := loyalty.AddProductInput{
		Name:     f.ask("name", ""),
		Codename: f.ask("codename", ""),
		IsActive: f.askBool("active", true),
	}

	ed := screen.NewEditor("products", r.api.AddProduct, r.api.UpdateProduct, r.cache, r.logger)
	out, err := ed.Submit(ctx, "",
		func() loyalty.AddProductInput { return in },
		func() loyalty.UpdateProductInput { return loyalty.UpdateProductInput{} })
	return finishSave(ctx, r, out, err, "Product saved", "")
}

func (r *Runner) editProduct(ctx context.Context, id string) error {
	current, ok := loadForEdit(r, id, func() (gql.Result[loyalty.Product], error) {
		return r.api.GetProductByID(ctx, id)
	})
	if !ok {
		return nil
	}

	f := r.form()
	in := loyalty.UpdateProductInput{
		Name:     f.askChange("name", current.Name),
		Codename: f.askChange("codename", current.Codename),
		IsActive: f.askBoolChange("active", current.IsActive),
	}

	ed := screen.NewEditor("products", r.api.AddProduct, r.api.UpdateProduct, r.cache, r.logger)
	out, err := ed.Submit(ctx, id,
		func() loyalty.AddProductInput { return loyalty.AddProductInput{} },
		func() loyalty.UpdateProductInput { return in })
	return finishSave(ctx, r, out, err, "Product saved", "")
}

func (r *Runner) createUser(ctx context.Context) error {
	f := r.form()
	in := loyalty.AddUserInput{
		FirstName: f.ask("first name", ""),
		LastName:  f.ask("last name", ""),
		Email:     f.ask("email", ""),
		Password:  f.ask("password", ""),
		IsActive:  f.askBool("active", true),
	}

	ed := screen.NewEditor("users", r.api.AddUser, r.api.UpdateUser, r.cache, r.logger)
	out, err := ed.Submit(ctx, "",
		func() loyalty.AddUserInput { return in },
		func() loyalty.UpdateUserInput { return loyalty.UpdateUserInput{} })
	return finishSave(ctx, r, out, err, "User saved", "")
}

func (r *Runner) editUser(ctx context.Context, id string) error {
	current, ok := loadForEdit(r, id, func() (gql.Result[loyalty.User], error) {
		return r.api.GetUserByID(ctx, id)
	})
	if !ok {
		return nil
	}

	f := r.form()
	in := loyalty.UpdateUserInput{
		FirstName: f.askChange("first name", current.FirstName),
		LastName:  f.askChange("last name", current.LastName),
		Email:     f.askChange("email", current.Email),
		IsActive:  f.askBoolChange("active", current.IsActive),
	}
	if password := f.askChange("password", ""); password != nil {
		in.Password = password
	}

	ed := screen.NewEditor("users", r.api.AddUser, r.api.UpdateUser, r.cache, r.logger)
	out, err := ed.Submit(ctx, id,
		func() loyalty.AddUserInput { return loyalty.AddUserInput{} },
		func() loyalty.UpdateUserInput { return in })
	return finishSave(ctx, r, out, err, "User saved", "")
}

func (r *Runner) createLevel(ctx context.Context) error {
	f := r.form()
	in := loyalty.AddLevelInput{
		Name:      f.ask("name", ""),
		MinPoints: f.askFloat("min points", 0),
		IsActive:  f.askBool("active", true),
	}

	ed := screen.NewEditor("levels", r.api.AddLevel, r.api.UpdateLevel, r.cache, r.logger)
	out, err := ed.Submit(ctx, "",
		func() loyalty.AddLevelInput { return in },
		func() loyalty.UpdateLevelInput { return loyalty.UpdateLevelInput{} })
	return finishSave(ctx, r, out, err, "Level saved", "")
}

func (r *Runner) editLevel(ctx context.Context, id string) error {
	current, ok := loadForEdit(r, id, func() (gql.Result[loyalty.Level], error) {
		return r.api.GetLevelByID(ctx, id)
	})
	if !ok {
		return nil
	}

	f := r.form()
	in := loyalty.UpdateLevelInput{
		Name:      f.askChange("name", current.Name),
		MinPoints: f.askFloatChange("min points", current.MinPoints),
		IsActive:  f.askBoolChange("active", current.IsActive),
	}

	ed := screen.NewEditor("levels", r.api.AddLevel, r.api.UpdateLevel, r.cache, r.logger)
	out, err := ed.Submit(ctx, id,
		func() loyalty.AddLevelInput { return loyalty.AddLevelInput{} },
		func() loyalty.UpdateLevelInput { return in })
	return finishSave(ctx, r, out, err, "Level saved", "")
}

// marginOptions lists the products and stations a margin can reference,
// the way the form's dropdowns are populated before editing.
func (r *Runner) marginOptions(ctx context.Context) {
	products, err := r.api.Products(ctx, gql.Cursor{}, "")
	if err == nil && products.OK() {
		fmt.Fprintln(r.out, "Products:")
		for _, p := range products.Value.Items {
			fmt.Fprintf(r.out, "  %s  %s\n", p.ID, p.Name)
		}
	}
	stations, err := r.api.GasStations(ctx, gql.Cursor{}, "")
	if err == nil && stations.OK() {
		fmt.Fprintln(r.out, "Gas stations (blank for all):")
		for _, g := range stations.Value.Items {
			fmt.Fprintf(r.out, "  %s  %s\n", g.ID, g.Name)
		}
	}
}

func (r *Runner) createMargin(ctx context.Context) error {
	r.marginOptions(ctx)

	f := r.form()
	in := loyalty.AddMarginInput{
		MarginType: f.ask("margin type (by_margin/by_liter)", loyalty.MarginByMargin),
		Margin:     f.askFloat("margin", 0),
		Points:     f.askFloat("points", 0),
		Product:    f.ask("product id", ""),
	}
	if station := f.ask("gas station id", ""); station != "" {
		in.GasStation = &station
	}

	ed := screen.NewEditor("margins", r.api.AddMargin, r.api.UpdateMargin, r.cache, r.logger)
	out, err := ed.Submit(ctx, "",
		func() loyalty.AddMarginInput { return in },
		func() loyalty.UpdateMarginInput { return loyalty.UpdateMarginInput{} })
	return finishSave(ctx, r, out, err, "Margin saved", marginConflictMessage)
}

func (r *Runner) editMargin(ctx context.Context, id string) error {
	current, ok := loadForEdit(r, id, func() (gql.Result[loyalty.Margin], error) {
		return r.api.GetMarginByID(ctx, id)
	})
	if !ok {
		return nil
	}
	r.marginOptions(ctx)

	station := ""
	if current.GasStation != nil {
		station = current.GasStation.ID
	}

	f := r.form()
	in := loyalty.UpdateMarginInput{
		MarginType: f.askChange("margin type (by_margin/by_liter)", current.MarginType),
		Margin:     f.askFloatChange("margin", current.Margin),
		Points:     f.askFloatChange("points", current.Points),
		Product:    f.askChange("product id", current.Product.ID),
		GasStation: f.askChange("gas station id", station),
	}

	ed := screen.NewEditor("margins", r.api.AddMargin, r.api.UpdateMargin, r.cache, r.logger)
	out, err := ed.Submit(ctx, id,
		func() loyalty.AddMarginInput { return loyalty.AddMarginInput{} },
		func() loyalty.UpdateMarginInput { return in })
	return finishSave(ctx, r, out, err, "Margin saved", marginConflictMessage)
}

func (r *Runner) benefitOptions(ctx context.Context) {
	levels, err := r.api.Levels(ctx, gql.Cursor{}, "")
	if err == nil && levels.OK() {
		fmt.Fprintln(r.out, "Levels:")
		for _, l := range levels.Value.Items {
			fmt.Fprintf(r.out, "  %s  %s\n", l.ID, l.Name)
		}
	}
}

func (r *Runner) createBenefit(ctx context.Context) error {
	r.benefitOptions(ctx)

	f := r.form()
	in := loyalty.AddBenefitInput{
		Level:     f.ask("level id", ""),
		Name:      f.ask("name", ""),
		Type:      f.ask("type (physical/digital/gas/periferics)", loyalty.BenefitPhysical),
		Discount:  f.askFloat("discount", 0),
		MinAmount: f.askFloat("min amount", 0),
		IsActive:  f.askBool("active", true),
	}
	// Gas and periferics benefits do not carry stock, frequency or an
	// external product.
	if in.Type != loyalty.BenefitGas && in.Type != loyalty.BenefitPeriferics {
		in.Frequency = f.ask("frequency (n_times/daily/montly/weekly/hourly/always)", "")
		if in.Frequency == loyalty.FrequencyNTimes {
			in.NumTimes = f.askOptionalInt("num times")
		}
		in.ExternalProductID = f.ask("external product id", "")
		in.Stock = f.askOptionalInt("stock")
		in.Dependency = f.askBool("dependency", false)
	}

	ed := screen.NewEditor("benefits", r.api.AddBenefit, r.api.UpdateBenefit, r.cache, r.logger)
	out, err := ed.Submit(ctx, "",
		func() loyalty.AddBenefitInput { return in },
		func() loyalty.UpdateBenefitInput { return loyalty.UpdateBenefitInput{} })
	return finishSave(ctx, r, out, err, "Benefit saved", "")
}

func (r *Runner) editBenefit(ctx context.Context, id string) error {
	current, ok := loadForEdit(r, id, func() (gql.Result[loyalty.Benefit], error) {
		return r.api.GetBenefitByID(ctx, id)
	})
	if !ok {
		return nil
	}
	r.benefitOptions(ctx)

	f := r.form()
	in := loyalty.UpdateBenefitInput{
		Level:             f.askChange("level id", current.Level.ID),
		Name:              f.askChange("name", current.Name),
		Type:              f.askChange("type (physical/digital/gas/periferics)", current.Type),
		Frequency:         f.askChange("frequency", current.Frequency),
		NumTimes:          f.askIntChange("num times", current.NumTimes),
		ExternalProductID: f.askChange("external product id", current.ExternalProductID),
		Stock:             f.askIntChange("stock", current.Stock),
		Discount:          f.askFloatChange("discount", current.Discount),
		MinAmount:         f.askFloatChange("min amount", current.MinAmount),
		IsActive:          f.askBoolChange("active", current.IsActive),
		Dependency:        f.askBoolChange("dependency", current.Dependency),
	}

	ed := screen.NewEditor("benefits", r.api.AddBenefit, r.api.UpdateBenefit, r.cache, r.logger)
	out, err := ed.Submit(ctx, id,
		func() loyalty.AddBenefitInput { return loyalty.AddBenefitInput{} },
		func() loyalty.UpdateBenefitInput { return in })
	return finishSave(ctx, r, out, err, "Benefit saved", "")
}

// editGeneratedBenefit only adjusts stock and active; generated benefits
// have no create form, they come from the backend's generation run.
func (r *Runner) editGeneratedBenefit(ctx context.Context, id string) error {
	current, ok := loadForEdit(r, id, func() (gql.Result[loyalty.BenefitGenerated], error) {
		return r.api.GetBenefitGeneratedByID(ctx, id)
	})
	if !ok {
		return nil
	}

	f := r.form()
	in := loyalty.UpdateGeneratedBenefitInput{
		Stock:    f.askIntChange("stock", current.Stock),
		IsActive: f.askBoolChange("active", current.IsActive),
	}

	ed := screen.NewUpdateEditor("benefits-generated", r.api.UpdateGeneratedBenefit, r.cache, r.logger)
	out, err := ed.Update(ctx, id,
		func() loyalty.UpdateGeneratedBenefitInput { return in })
	return finishSave(ctx, r, out, err, "Generated benefit saved", "")
}
