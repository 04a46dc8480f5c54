package loyalty

import (
	"context"
	"encoding/json"
	"fmt"

	"loyalty_admin/internal/gql"

	"go.uber.org/zap"
)

// Client exposes one typed operation per backend query and mutation.
type Client struct {
	gql    *gql.Client
	logger *zap.Logger
}

func NewClient(transport *gql.Client, logger *zap.Logger) *Client {
	return &Client{
		gql:    transport,
		logger: logger.Named("loyalty"),
	}
}

// Login never goes through the three-way union; it returns the dedicated
// LoginSuccess/LoginError pair.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	raw, err := c.gql.Do(ctx, loginDoc, map[string]any{
		"email":    email,
		"password": password,
	}, "login")
	if err != nil {
		return LoginResult{}, err
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return LoginResult{}, fmt.Errorf("decode login result: %w", err)
	}
	return result, nil
}

func (c *Client) HealthCheck(ctx context.Context) (string, error) {
	raw, err := c.gql.Do(ctx, healthCheckDoc, nil, "healthCheck")
	if err != nil {
		return "", err
	}

	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return "", fmt.Errorf("decode health check: %w", err)
	}
	return status, nil
}

func (c *Client) Customers(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[Customer]], error) {
	return list[Customer](ctx, c, customersDoc, "customers", cursor, &search)
}

func (c *Client) Users(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[User]], error) {
	return list[User](ctx, c, usersDoc, "users", cursor, &search)
}

func (c *Client) GasStations(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[GasStation]], error) {
	return list[GasStation](ctx, c, gasStationsDoc, "gasStations", cursor, &search)
}

func (c *Client) Products(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[Product]], error) {
	return list[Product](ctx, c, productsDoc, "products", cursor, &search)
}

func (c *Client) Margins(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[Margin]], error) {
	return list[Margin](ctx, c, marginsDoc, "gasStationsMargin", cursor, &search)
}

func (c *Client) Levels(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[Level]], error) {
	return list[Level](ctx, c, levelsDoc, "levels", cursor, &search)
}

// CustomerLevels takes no search term; the backend query does not declare one.
func (c *Client) CustomerLevels(ctx context.Context, cursor gql.Cursor) (gql.Result[gql.Page[CustomerLevel]], error) {
	return list[CustomerLevel](ctx, c, customerLevelsDoc, "customerLevels", cursor, nil)
}

func (c *Client) Benefits(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[Benefit]], error) {
	return list[Benefit](ctx, c, benefitsDoc, "benefits", cursor, &search)
}

func (c *Client) BenefitsGenerated(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[BenefitGenerated]], error) {
	return list[BenefitGenerated](ctx, c, benefitsGeneratedDoc, "benefitsGenerated", cursor, &search)
}

func (c *Client) BenefitsTickets(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[BenefitTicket]], error) {
	return list[BenefitTicket](ctx, c, benefitsTicketsDoc, "benefitsTickets", cursor, &search)
}

func (c *Client) Accumulations(ctx context.Context, cursor gql.Cursor, search string) (gql.Result[gql.Page[Accumulation]], error) {
	return list[Accumulation](ctx, c, accumulationsDoc, "accumulations", cursor, &search)
}

// Report takes no search term either.
func (c *Client) Report(ctx context.Context, cursor gql.Cursor) (gql.Result[gql.Page[AccumulationReport]], error) {
	return list[AccumulationReport](ctx, c, reportDoc, "accumulationsReport", cursor, nil)
}

func (c *Client) GetUserByID(ctx context.Context, id string) (gql.Result[User], error) {
	return byID[User](ctx, c, getUserByIDDoc, "getUserById", id)
}

func (c *Client) GetProductByID(ctx context.Context, id string) (gql.Result[Product], error) {
	return byID[Product](ctx, c, getProductByIDDoc, "getProductById", id)
}

func (c *Client) GetMarginByID(ctx context.Context, id string) (gql.Result[Margin], error) {
	return byID[Margin](ctx, c, getMarginByIDDoc, "getGasStationMarginById", id)
}

func (c *Client) GetLevelByID(ctx context.Context, id string) (gql.Result[Level], error) {
	return byID[Level](ctx, c, getLevelByIDDoc, "getLevelById", id)
}

func (c *Client) GetBenefitByID(ctx context.Context, id string) (gql.Result[Benefit], error) {
	return byID[Benefit](ctx, c, getBenefitByIDDoc, "getBenefitById", id)
}

func (c *Client) GetBenefitGeneratedByID(ctx context.Context, id string) (gql.Result[BenefitGenerated], error) {
	return byID[BenefitGenerated](ctx, c, getBenefitGeneratedByIDDoc, "getBenefitGeneratedById", id)
}

func (c *Client) AddProduct(ctx context.Context, in AddProductInput) (gql.Result[Product], error) {
	return mutate[Product](ctx, c, addProductDoc, "addProduct", map[string]any{"input": in})
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (gql.Result[Product], error) {
	return mutate[Product](ctx, c, updateProductDoc, "updateProduct", map[string]any{"id": id, "input": in})
}

func (c *Client) AddUser(ctx context.Context, in AddUserInput) (gql.Result[User], error) {
	return mutate[User](ctx, c, addUserDoc, "addUser", map[string]any{"input": in})
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (gql.Result[User], error) {
	return mutate[User](ctx, c, updateUserDoc, "updateUser", map[string]any{"id": id, "input": in})
}

func (c *Client) AddLevel(ctx context.Context, in AddLevelInput) (gql.Result[Level], error) {
	return mutate[Level](ctx, c, addLevelDoc, "addLevel", map[string]any{"input": in})
}

func (c *Client) UpdateLevel(ctx context.Context, id string, in UpdateLevelInput) (gql.Result[Level], error) {
	return mutate[Level](ctx, c, updateLevelDoc, "updateLevel", map[string]any{"id": id, "input": in})
}

func (c *Client) AddMargin(ctx context.Context, in AddMarginInput) (gql.Result[Margin], error) {
	return mutate[Margin](ctx, c, addMarginDoc, "addGasStationMargin", map[string]any{"input": in})
}

func (c *Client) UpdateMargin(ctx context.Context, id string, in UpdateMarginInput) (gql.Result[Margin], error) {
	return mutate[Margin](ctx, c, updateMarginDoc, "updateGasStationMargin", map[string]any{"id": id, "input": in})
}

func (c *Client) AddBenefit(ctx context.Context, in AddBenefitInput) (gql.Result[Benefit], error) {
	return mutate[Benefit](ctx, c, addBenefitDoc, "addBenefit", map[string]any{"input": in})
}

func (c *Client) UpdateBenefit(ctx context.Context, id string, in UpdateBenefitInput) (gql.Result[Benefit], error) {
	return mutate[Benefit](ctx, c, updateBenefitDoc, "updateBenefit", map[string]any{"id": id, "input": in})
}

func (c *Client) UpdateGeneratedBenefit(ctx context.Context, id string, in UpdateGeneratedBenefitInput) (gql.Result[BenefitGenerated], error) {
	return mutate[BenefitGenerated](ctx, c, updateGeneratedBenefitDoc, "updateGeneratedBenefit", map[string]any{"id": id, "input": in})
}

func list[T any](ctx context.Context, c *Client, doc, operation string, cursor gql.Cursor, search *string) (gql.Result[gql.Page[T]], error) {
	vars := map[string]any{}
	if cursor.NextCursor != nil {
		vars["nextCursor"] = *cursor.NextCursor
	}
	if cursor.PrevCursor != nil {
		vars["prevCursor"] = *cursor.PrevCursor
	}
	if search != nil {
		vars["search"] = *search
	}
	return decode[gql.Page[T]](ctx, c, doc, operation, vars)
}

func byID[T any](ctx context.Context, c *Client, doc, operation, id string) (gql.Result[T], error) {
	return decode[T](ctx, c, doc, operation, map[string]any{"id": id})
}

func mutate[T any](ctx context.Context, c *Client, doc, operation string, vars map[string]any) (gql.Result[T], error) {
	return decode[T](ctx, c, doc, operation, vars)
}

func decode[T any](ctx context.Context, c *Client, doc, operation string, vars map[string]any) (gql.Result[T], error) {
	raw, err := c.gql.Do(ctx, doc, vars, operation)
	if err != nil {
		return gql.Result[T]{}, err
	}

	var result gql.Result[T]
	if err := json.Unmarshal(raw, &result); err != nil {
		return gql.Result[T]{}, fmt.Errorf("decode %s: %w", operation, err)
	}
	return result, nil
}
