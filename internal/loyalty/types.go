package loyalty

import (
	"encoding/json"
	"time"
)

// Margin types accepted by the backend.
const (
	MarginByMargin = "by_margin"
	MarginByLiter  = "by_liter"
)

// Benefit types and frequencies. Gas and periferics benefits carry a
// discount instead of stock/frequency/external product data.
const (
	BenefitPhysical   = "physical"
	BenefitDigital    = "digital"
	BenefitGas        = "gas"
	BenefitPeriferics = "periferics"

	FrequencyNTimes  = "n_times"
	FrequencyDaily   = "daily"
	FrequencyMonthly = "montly"
	FrequencyWeekly  = "weekly"
	FrequencyHourly  = "hourly"
	FrequencyAlways  = "always"
)

type Customer struct {
	ID          string `json:"id"`
	ExternalID  string `json:"externalId"`
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	Status      string `json:"status"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsActive  bool   `json:"isActive"`
}

type GasStation struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ExternalID    string  `json:"externalId"`
	CrePermission string  `json:"crePermission"`
	Latitude      string  `json:"latitude"`
	Longitude     string  `json:"longitude"`
	City          string  `json:"city"`
	RegularPrice  float64 `json:"regularPrice"`
	PremiumPrice  float64 `json:"premiumPrice"`
	DieselPrice   float64 `json:"dieselPrice"`
}

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Codename string `json:"codename"`
	IsActive bool   `json:"isActive"`
}

// Margin is a gas-station margin: the accumulation rule binding a product
// to an optional station.
type Margin struct {
	ID         string      `json:"id"`
	MarginType string      `json:"marginType"`
	Margin     float64     `json:"margin"`
	Points     float64     `json:"points"`
	Product    Product     `json:"product"`
	GasStation *GasStation `json:"gasStation"`
}

type Level struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MinPoints float64 `json:"minPoints"`
	IsActive  bool    `json:"isActive"`
}

type CustomerLevel struct {
	ID        string    `json:"id"`
	Customer  Customer  `json:"customer"`
	Level     Level     `json:"level"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

type Benefit struct {
	ID                string     `json:"id"`
	Level             Level      `json:"level"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	Frequency         string     `json:"frequency"`
	Discount          float64    `json:"discount"`
	NumTimes          int        `json:"numTimes"`
	ExternalProductID string     `json:"externalProductId"`
	Stock             int        `json:"stock"`
	IsActive          bool       `json:"isActive"`
	Dependency        bool       `json:"dependency"`
	MinAmount         float64    `json:"minAmount"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt"`
}

type BenefitGenerated struct {
	Benefit
	StockUsed int       `json:"stockUsed"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type BenefitTicket struct {
	ID               string           `json:"id"`
	Customer         Customer         `json:"customer"`
	BenefitGenerated BenefitGenerated `json:"benefitGenerated"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          time.Time        `json:"endDate"`
	Redeemed         bool             `json:"redeemed"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type Accumulation struct {
	ID              string      `json:"id"`
	Margin          float64     `json:"margin"`
	MarginType      string      `json:"marginType"`
	Customer        Customer    `json:"customer"`
	Points          float64     `json:"points"`
	Product         Product     `json:"product"`
	GasStation      *GasStation `json:"gasStation"`
	Amount          float64     `json:"amount"`
	GeneratedPoints float64     `json:"generatedPoints"`
	GasPrice        float64     `json:"gasPrice"`
	IsActive        bool        `json:"isActive"`
	UsedPoints      float64     `json:"usedPoints"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type AccumulationReport struct {
	ID                   string   `json:"id"`
	Customer             Customer `json:"customer"`
	TotalAmount          float64  `json:"totalAmount"`
	AvgAmount            float64  `json:"avgAmount"`
	TotalPoints          float64  `json:"totalPoints"`
	TotalTransactions    int      `json:"totalTransactions"`
	TotalGeneratedPoints float64  `json:"totalGeneratedPoints"`
	TotalUsedPoints      float64  `json:"totalUsedPoints"`
}

// LoginResult is the login union: LoginSuccess or LoginError.
type LoginResult struct {
	Typename string
	Success  *LoginSuccess
	Failure  *LoginError
}

type LoginSuccess struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *LoginError) Error() string {
	return e.Message
}

func (r *LoginResult) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var probe struct {
		Typename string `json:"__typename"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	r.Typename = probe.Typename

	if probe.Typename == "LoginError" {
		r.Failure = &LoginError{}
		return json.Unmarshal(data, r.Failure)
	}
	r.Success = &LoginSuccess{}
	return json.Unmarshal(data, r.Success)
}
