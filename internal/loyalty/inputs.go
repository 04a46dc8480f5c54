package loyalty

// Form inputs for the create/update mutations. The validate tags are the
// per-entity rule tables; conditional requirements are keyed on sibling
// fields exactly as the backend enforces them.

type AddProductInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Codename string `json:"codename" validate:"required,max=100"`
	IsActive bool   `json:"isActive"`
}

type UpdateProductInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Codename *string `json:"codename,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type AddUserInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=6,max=20"`
	IsActive  bool   `json:"isActive"`
}

type UpdateUserInput struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6,max=20"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

type AddLevelInput struct {
	Name      string  `json:"name" validate:"required,max=100"`
	MinPoints float64 `json:"minPoints" validate:"gte=0"`
	IsActive  bool    `json:"isActive"`
}

type UpdateLevelInput struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	MinPoints *float64 `json:"minPoints,omitempty" validate:"omitempty,gte=0"`
	IsActive  *bool    `json:"isActive,omitempty"`
}

// Margin applies only when the margin type is by_margin; the by_liter mode
// accumulates on points alone.
type AddMarginInput struct {
	MarginType string  `json:"marginType" validate:"required,oneof=by_margin by_liter"`
	Margin     float64 `json:"margin" validate:"gte=0,lte=100"`
	Points     float64 `json:"points" validate:"gte=0,lte=100"`
	Product    string  `json:"product" validate:"required"`
	GasStation *string `json:"gasStation,omitempty"`
}

type UpdateMarginInput struct {
	MarginType *string  `json:"marginType,omitempty" validate:"omitempty,oneof=by_margin by_liter"`
	Margin     *float64 `json:"margin,omitempty" validate:"omitempty,gte=0,lte=100"`
	Points     *float64 `json:"points,omitempty" validate:"omitempty,gte=0,lte=100"`
	Product    *string  `json:"product,omitempty"`
	GasStation *string  `json:"gasStation,omitempty"`
}

// Frequency, stock and the external product id only apply to physical and
// digital benefits; gas and periferics benefits are discount-only.
// NumTimes applies when the frequency is n_times.
type AddBenefitInput struct {
	Level             string  `json:"level" validate:"required"`
	Name              string  `json:"name" validate:"required,max=100"`
	Type              string  `json:"type" validate:"required,oneof=physical digital gas periferics"`
	Frequency         string  `json:"frequency" validate:"required_unless=Type gas Type periferics,omitempty,oneof=n_times daily montly weekly hourly always"`
	Discount          float64 `json:"discount" validate:"gte=0"`
	NumTimes          *int    `json:"numTimes,omitempty" validate:"required_if=Frequency n_times,omitempty,gte=0"`
	ExternalProductID string  `json:"externalProductId" validate:"required_unless=Type gas Type periferics"`
	Stock             *int    `json:"stock,omitempty" validate:"required_unless=Type gas Type periferics,omitempty,gte=0"`
	IsActive          bool    `json:"isActive"`
	Dependency        bool    `json:"dependency"`
	MinAmount         float64 `json:"minAmount" validate:"gte=0"`
}

type UpdateBenefitInput struct {
	Level             *string  `json:"level,omitempty"`
	Name              *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Type              *string  `json:"type,omitempty" validate:"omitempty,oneof=physical digital gas periferics"`
	Frequency         *string  `json:"frequency,omitempty" validate:"omitempty,oneof=n_times daily montly weekly hourly always"`
	Discount          *float64 `json:"discount,omitempty" validate:"omitempty,gte=0"`
	NumTimes          *int     `json:"numTimes,omitempty" validate:"omitempty,gte=0"`
	ExternalProductID *string  `json:"externalProductId,omitempty"`
	Stock             *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive          *bool    `json:"isActive,omitempty"`
	Dependency        *bool    `json:"dependency,omitempty"`
	MinAmount         *float64 `json:"minAmount,omitempty" validate:"omitempty,gte=0"`
}

type UpdateGeneratedBenefitInput struct {
	Stock    *int  `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive *bool `json:"isActive,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
