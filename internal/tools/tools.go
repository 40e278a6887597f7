package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nordic-tco/tco-calculator/internal/calculations"
	"github.com/nordic-tco/tco-calculator/internal/config"
	"github.com/nordic-tco/tco-calculator/internal/market"
	"github.com/nordic-tco/tco-calculator/internal/metrics"
	"github.com/nordic-tco/tco-calculator/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrInvalidParams помечает ошибки во входных параметрах инструмента
var ErrInvalidParams = errors.New("invalid parameters")

// Имена инструментов
const (
	CalculateTCOTool     = "calculate_tco"
	CompareOwnershipTool = "compare_ownership"
	LoanScheduleTool     = "loan_schedule"
	MarketConfigTool     = "market_config"
)

// now подменяется в тестах
var now = time.Now

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// CompareResponse ответ инструмента сравнения моделей владения
type CompareResponse struct {
	Results    map[market.OwnershipType]calculations.TCOResult `json:"results"`
	Comparison calculations.Comparison                         `json:"comparison"`
}

// MarketInfo справочные данные рынка для отображения
type MarketInfo struct {
	Country         market.Country                                    `json:"country"`
	Config          market.CountryConfig                              `json:"config"`
	Maintenance     map[market.VehicleCategory]market.MaintenanceCost `json:"maintenance"`
	Insurance       map[market.VehicleCategory]float64                `json:"insurance"`
	Depreciation    map[market.VehicleCategory][]float64              `json:"depreciation"`
	Locations       map[market.Location]market.LocationMultiplier     `json:"locations"`
	AgeInsurance    map[int]float64                                   `json:"age_insurance"`
	WinterEquipment market.WinterEquipmentCosts                       `json:"winter_equipment"`
}

// Registry возвращает все инструменты по именам
func Registry(cfg *config.Config, tracer trace.Tracer) map[string]ToolHandler {
	return map[string]ToolHandler{
		CalculateTCOTool:     CalculateTCOHandler(cfg, tracer),
		CompareOwnershipTool: CompareOwnershipHandler(cfg, tracer),
		LoanScheduleTool:     LoanScheduleHandler(cfg, tracer),
		MarketConfigTool:     MarketConfigHandler(cfg, tracer),
	}
}

// Names возвращает отсортированные имена инструментов
func Names(registry map[string]ToolHandler) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CalculateTCOHandler обрабатывает запрос на расчет стоимости владения для одной модели
func CalculateTCOHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := CalculateTCOTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()
		defer observeDuration(toolName, now())

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		ownership, ok := params["ownership_type"].(string)
		if !ok {
			return nil, invalid(span, toolName, fmt.Errorf("invalid parameter: ownership_type"))
		}
		ownershipType := market.OwnershipType(strings.ToLower(ownership))
		if err := validators.CheckOwnershipType(ownershipType); err != nil {
			return nil, invalid(span, toolName, err)
		}

		form, country, err := prepareForm(cfg, params)
		if err != nil {
			return nil, invalid(span, toolName, err)
		}
		setFormAttributes(span, form)
		span.SetAttributes(attribute.String("ownership_type", string(ownershipType)))

		result := calculations.Calculate(calculations.CalculationInput{
			FormData:      form,
			OwnershipType: ownershipType,
			CountryConfig: country,
		})

		metrics.NetTotalCost.WithLabelValues(string(ownershipType)).Observe(result.TotalCost)
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("net_total_cost", result.TotalCost),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()

		return result, nil
	}
}

// CompareOwnershipHandler обрабатывает запрос на сравнение покупки, кредита и лизинга
func CompareOwnershipHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := CompareOwnershipTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()
		defer observeDuration(toolName, now())

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		form, country, err := prepareForm(cfg, params)
		if err != nil {
			return nil, invalid(span, toolName, err)
		}
		setFormAttributes(span, form)

		results := calculations.CalculateAll(form, country)
		comparison := calculations.Compare(results, form.Period.Years)

		for ownership, res := range results {
			metrics.NetTotalCost.WithLabelValues(string(ownership)).Observe(res.TotalCost)
		}
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("cheapest", string(comparison.Cheapest)),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()

		return CompareResponse{Results: results, Comparison: comparison}, nil
	}
}

// LoanScheduleHandler обрабатывает запрос на расчет графика платежей по автокредиту
func LoanScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := LoanScheduleTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()
		defer observeDuration(toolName, now())

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		principal, ok := params["principal"].(float64)
		if !ok {
			return nil, invalid(span, toolName, fmt.Errorf("invalid parameter: principal"))
		}
		annualRatePercent, ok := params["annual_rate_percent"].(float64)
		if !ok {
			return nil, invalid(span, toolName, fmt.Errorf("invalid parameter: annual_rate_percent"))
		}
		monthsFloat, ok := params["months"].(float64)
		if !ok {
			return nil, invalid(span, toolName, fmt.Errorf("invalid parameter: months"))
		}
		months := int(monthsFloat)

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("annual_rate_percent", annualRatePercent),
			attribute.Int("months", months),
		)

		if err := validators.CheckPrincipal(cfg, principal); err != nil {
			return nil, invalid(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, annualRatePercent); err != nil {
			return nil, invalid(span, toolName, err)
		}
		if err := validators.CheckMonths(cfg, months); err != nil {
			return nil, invalid(span, toolName, err)
		}

		result, err := calculations.AnnuitySchedule(principal, annualRatePercent, months)
		if err != nil {
			span.SetAttributes(attribute.String("error", "calculation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
			metrics.APICalls.WithLabelValues("mcp", toolName, "error").Inc()
			return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("monthly_payment", result.Summary.MonthlyPayment),
			attribute.Float64("total_paid", result.Summary.TotalPaid),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()

		return result, nil
	}
}

// MarketConfigHandler возвращает справочные таблицы для страны
func MarketConfigHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := MarketConfigTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()
		defer observeDuration(toolName, now())

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		id := cfg.DefaultCountry
		if raw, present := params["country"]; present {
			s, ok := raw.(string)
			if !ok {
				return nil, invalid(span, toolName, fmt.Errorf("invalid parameter: country"))
			}
			id = s
		}

		info, err := MarketInfoFor(id)
		if err != nil {
			return nil, invalid(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("country", string(info.Country)),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()

		return info, nil
	}
}

// MarketInfoFor собирает справочные данные для страны
func MarketInfoFor(id string) (MarketInfo, error) {
	countryCfg, err := market.Lookup(id)
	if err != nil {
		return MarketInfo{}, err
	}

	info := MarketInfo{
		Country:         market.Country(strings.ToLower(strings.TrimSpace(id))),
		Config:          countryCfg,
		Maintenance:     make(map[market.VehicleCategory]market.MaintenanceCost, len(market.Categories)),
		Insurance:       make(map[market.VehicleCategory]float64, len(market.Categories)),
		Depreciation:    make(map[market.VehicleCategory][]float64, len(market.Categories)),
		Locations:       make(map[market.Location]market.LocationMultiplier, len(market.Locations)),
		AgeInsurance:    market.AgeInsuranceTable(),
		WinterEquipment: market.WinterEquipment,
	}
	for _, c := range market.Categories {
		info.Maintenance[c] = market.MaintenanceBase(c)
		info.Insurance[c] = market.InsuranceBase(c)
		info.Depreciation[c] = market.DepreciationRates(c)
	}
	for _, l := range market.Locations {
		info.Locations[l] = market.LocationMultipliers(l)
	}
	return info, nil
}

// prepareForm разбирает данные формы, подставляет значения по умолчанию,
// проверяет их и находит конфигурацию страны
func prepareForm(cfg *config.Config, params map[string]interface{}) (calculations.FormData, market.CountryConfig, error) {
	var form calculations.FormData
	if err := decodeParams(params, &form); err != nil {
		return form, market.CountryConfig{}, err
	}

	if form.User.Country == "" {
		form.User.Country = market.Country(cfg.DefaultCountry)
	}
	form.User.Country = market.Country(strings.ToLower(string(form.User.Country)))
	if form.Period.ReferenceYear == 0 {
		form.Period.ReferenceYear = now().Year()
	}

	if err := validators.CheckFormData(cfg, form); err != nil {
		return form, market.CountryConfig{}, err
	}

	country, err := market.Lookup(string(form.User.Country))
	if err != nil {
		return form, market.CountryConfig{}, err
	}
	return form, country, nil
}

func decodeParams(params map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode parameters: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode parameters: %w", err)
	}
	return nil
}

func setFormAttributes(span trace.Span, form calculations.FormData) {
	span.SetAttributes(
		attribute.String("country", string(form.User.Country)),
		attribute.String("vehicle_category", string(form.Vehicle.VehicleCategory)),
		attribute.String("fuel_type", string(form.Vehicle.FuelType)),
		attribute.Float64("purchase_price", form.Vehicle.PurchasePrice),
		attribute.Int("years", form.Period.Years),
	)
}

func observeDuration(toolName string, start time.Time) {
	metrics.ToolDuration.WithLabelValues(toolName).Observe(now().Sub(start).Seconds())
}

// invalid регистрирует ошибку валидации и оборачивает ее в ErrInvalidParams
func invalid(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "validation_error"))
	metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
	metrics.APICalls.WithLabelValues("mcp", toolName, "error").Inc()
	return fmt.Errorf("%w: %w", ErrInvalidParams, err)
}
