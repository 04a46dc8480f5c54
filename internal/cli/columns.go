package cli

import (
	"fmt"

	"loyalty_admin/internal/loyalty"
)

func userColumns() []column[loyalty.User] {
	return []column[loyalty.User]{
		{"ID", func(u loyalty.User) string { return u.ID }},
		{"NAME", func(u loyalty.User) string { return u.FirstName + " " + u.LastName }},
		{"EMAIL", func(u loyalty.User) string { return u.Email }},
		{"ACTIVE", func(u loyalty.User) string { return formatBool(u.IsActive) }},
	}
}

func customerColumns() []column[loyalty.Customer] {
	return []column[loyalty.Customer]{
		{"ID", func(c loyalty.Customer) string { return c.ID }},
		{"NAME", func(c loyalty.Customer) string { return c.Name + " " + c.LastName }},
		{"PHONE", func(c loyalty.Customer) string { return c.PhoneNumber }},
		{"EMAIL", func(c loyalty.Customer) string { return c.Email }},
		{"STATUS", func(c loyalty.Customer) string { return c.Status }},
	}
}

func gasStationColumns() []column[loyalty.GasStation] {
	return []column[loyalty.GasStation]{
		{"ID", func(g loyalty.GasStation) string { return g.ID }},
		{"NAME", func(g loyalty.GasStation) string { return g.Name }},
		{"CITY", func(g loyalty.GasStation) string { return g.City }},
		{"REGULAR", func(g loyalty.GasStation) string { return formatFloat(g.RegularPrice) }},
		{"PREMIUM", func(g loyalty.GasStation) string { return formatFloat(g.PremiumPrice) }},
		{"DIESEL", func(g loyalty.GasStation) string { return formatFloat(g.DieselPrice) }},
		{"MAP", mapsURL},
	}
}

// mapsURL builds the link the station row exposes for its coordinates.
func mapsURL(g loyalty.GasStation) string {
	if g.Latitude == "" || g.Longitude == "" {
		return "-"
	}
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s,%s", g.Latitude, g.Longitude)
}

func productColumns() []column[loyalty.Product] {
	return []column[loyalty.Product]{
		{"ID", func(p loyalty.Product) string { return p.ID }},
		{"NAME", func(p loyalty.Product) string { return p.Name }},
		{"CODENAME", func(p loyalty.Product) string { return p.Codename }},
		{"ACTIVE", func(p loyalty.Product) string { return formatBool(p.IsActive) }},
	}
}

func marginColumns() []column[loyalty.Margin] {
	return []column[loyalty.Margin]{
		{"ID", func(m loyalty.Margin) string { return m.ID }},
		{"TYPE", func(m loyalty.Margin) string { return m.MarginType }},
		{"MARGIN", func(m loyalty.Margin) string { return formatFloat(m.Margin) }},
		{"POINTS", func(m loyalty.Margin) string { return formatFloat(m.Points) }},
		{"PRODUCT", func(m loyalty.Margin) string { return m.Product.Name }},
		{"STATION", func(m loyalty.Margin) string {
			if m.GasStation == nil {
				return "all"
			}
			return m.GasStation.Name
		}},
	}
}

func levelColumns() []column[loyalty.Level] {
	return []column[loyalty.Level]{
		{"ID", func(l loyalty.Level) string { return l.ID }},
		{"NAME", func(l loyalty.Level) string { return l.Name }},
		{"MIN POINTS", func(l loyalty.Level) string { return formatFloat(l.MinPoints) }},
		{"ACTIVE", func(l loyalty.Level) string { return formatBool(l.IsActive) }},
	}
}

func customerLevelColumns() []column[loyalty.CustomerLevel] {
	return []column[loyalty.CustomerLevel]{
		{"ID", func(c loyalty.CustomerLevel) string { return c.ID }},
		{"CUSTOMER", func(c loyalty.CustomerLevel) string { return c.Customer.Name + " " + c.Customer.LastName }},
		{"LEVEL", func(c loyalty.CustomerLevel) string { return c.Level.Name }},
		{"START", func(c loyalty.CustomerLevel) string { return formatDate(c.StartDate) }},
		{"END", func(c loyalty.CustomerLevel) string { return formatDate(c.EndDate) }},
		{"ACTIVE", func(c loyalty.CustomerLevel) string { return formatBool(c.IsActive) }},
	}
}

func benefitColumns() []column[loyalty.Benefit] {
	return []column[loyalty.Benefit]{
		{"ID", func(b loyalty.Benefit) string { return b.ID }},
		{"NAME", func(b loyalty.Benefit) string { return b.Name }},
		{"TYPE", func(b loyalty.Benefit) string { return b.Type }},
		{"FREQUENCY", func(b loyalty.Benefit) string { return b.Frequency }},
		{"LEVEL", func(b loyalty.Benefit) string { return b.Level.Name }},
		{"STOCK", func(b loyalty.Benefit) string { return fmt.Sprintf("%d", b.Stock) }},
		{"ACTIVE", func(b loyalty.Benefit) string { return formatBool(b.IsActive) }},
	}
}

func benefitGeneratedColumns() []column[loyalty.BenefitGenerated] {
	return []column[loyalty.BenefitGenerated]{
		{"ID", func(b loyalty.BenefitGenerated) string { return b.ID }},
		{"NAME", func(b loyalty.BenefitGenerated) string { return b.Name }},
		{"TYPE", func(b loyalty.BenefitGenerated) string { return b.Type }},
		{"STOCK", func(b loyalty.BenefitGenerated) string { return fmt.Sprintf("%d", b.Stock) }},
		{"USED", func(b loyalty.BenefitGenerated) string { return fmt.Sprintf("%d", b.StockUsed) }},
		{"START", func(b loyalty.BenefitGenerated) string { return formatDate(b.StartDate) }},
		{"END", func(b loyalty.BenefitGenerated) string { return formatDate(b.EndDate) }},
	}
}

func benefitTicketColumns() []column[loyalty.BenefitTicket] {
	return []column[loyalty.BenefitTicket]{
		{"ID", func(t loyalty.BenefitTicket) string { return t.ID }},
		{"CUSTOMER", func(t loyalty.BenefitTicket) string { return t.Customer.Name + " " + t.Customer.LastName }},
		{"BENEFIT", func(t loyalty.BenefitTicket) string { return t.BenefitGenerated.Name }},
		{"REDEEMED", func(t loyalty.BenefitTicket) string { return formatBool(t.Redeemed) }},
		{"START", func(t loyalty.BenefitTicket) string { return formatDate(t.StartDate) }},
		{"END", func(t loyalty.BenefitTicket) string { return formatDate(t.EndDate) }},
	}
}

func accumulationColumns() []column[loyalty.Accumulation] {
	return []column[loyalty.Accumulation]{
		{"ID", func(a loyalty.Accumulation) string { return a.ID }},
		{"CUSTOMER", func(a loyalty.Accumulation) string { return a.Customer.Name + " " + a.Customer.LastName }},
		{"PRODUCT", func(a loyalty.Accumulation) string { return a.Product.Name }},
		{"AMOUNT", func(a loyalty.Accumulation) string { return formatFloat(a.Amount) }},
		{"POINTS", func(a loyalty.Accumulation) string { return formatFloat(a.GeneratedPoints) }},
		{"DATE", func(a loyalty.Accumulation) string { return formatDate(a.CreatedAt) }},
	}
}

func reportColumns() []column[loyalty.AccumulationReport] {
	return []column[loyalty.AccumulationReport]{
		{"CUSTOMER", func(r loyalty.AccumulationReport) string { return r.Customer.Name + " " + r.Customer.LastName }},
		{"TOTAL", func(r loyalty.AccumulationReport) string { return formatFloat(r.TotalAmount) }},
		{"AVG", func(r loyalty.AccumulationReport) string { return formatFloat(r.AvgAmount) }},
		{"POINTS", func(r loyalty.AccumulationReport) string { return formatFloat(r.TotalPoints) }},
		{"TX", func(r loyalty.AccumulationReport) string { return fmt.Sprintf("%d", r.TotalTransactions) }},
	}
}
