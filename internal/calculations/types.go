package calculations

import "github.com/nordic-tco/tco-calculator/internal/market"

// VehicleData описывает рассчитываемый автомобиль.
// FuelConsumption задается в л/100 км, для электромобиля в кВт·ч/100 км.
type VehicleData struct {
	Make                   string                 `json:"make"`
	Model                  string                 `json:"model"`
	Year                   int                    `json:"year"`
	PurchasePrice          float64                `json:"purchase_price"`
	FuelType               market.FuelType        `json:"fuel_type"`
	FuelConsumption        float64                `json:"fuel_consumption"`
	EstimatedAnnualMileage float64                `json:"estimated_annual_mileage"`
	VehicleCategory        market.VehicleCategory `json:"vehicle_category"`
}

// PurchaseData условия покупки и кредита
type PurchaseData struct {
	DownPayment       float64  `json:"down_payment"`
	TradeInValue      float64  `json:"trade_in_value"`
	FinancingRequired bool     `json:"financing_required"`
	LoanTermYears     *int     `json:"loan_term_years,omitempty"`
	InterestRate      *float64 `json:"interest_rate,omitempty"`
}

// LeaseData условия лизинга. LeaseTerm задается в месяцах.
type LeaseData struct {
	MonthlyPayment     float64 `json:"monthly_payment"`
	DownPayment        float64 `json:"down_payment"`
	LeaseTerm          int     `json:"lease_term"`
	AnnualMileageLimit float64 `json:"annual_mileage_limit"`
	ExcessMileageFee   float64 `json:"excess_mileage_fee"`
	ResidualValue      float64 `json:"residual_value"`
}

// UserProfile профиль покупателя
type UserProfile struct {
	Country           market.Country  `json:"country"`
	Age               int             `json:"age"`
	DrivingExperience int             `json:"driving_experience"`
	Location          market.Location `json:"location"`
	HasGarage         bool            `json:"has_garage"`
}

// CalculationPeriod горизонт владения. ReferenceYear задает календарный год
// начала владения; 0 означает год выпуска автомобиля.
type CalculationPeriod struct {
	Years         int `json:"years"`
	ReferenceYear int `json:"reference_year,omitempty"`
}

// FormData полный набор пользовательских данных
type FormData struct {
	Vehicle  VehicleData       `json:"vehicle"`
	Purchase PurchaseData      `json:"purchase"`
	Lease    LeaseData         `json:"lease"`
	User     UserProfile       `json:"user"`
	Period   CalculationPeriod `json:"period"`
}

// CalculationInput входные данные одного расчета
type CalculationInput struct {
	FormData      FormData             `json:"form_data"`
	OwnershipType market.OwnershipType `json:"ownership_type"`
	CountryConfig market.CountryConfig `json:"country_config"`
}

// YearlyBreakdown затраты за один год владения
type YearlyBreakdown struct {
	Year              int     `json:"year"`
	InitialCosts      float64 `json:"initial_costs"`
	MonthlyPayments   float64 `json:"monthly_payments"`
	OperatingCosts    float64 `json:"operating_costs"`
	MaintenanceCosts  float64 `json:"maintenance_costs"`
	InsuranceCosts    float64 `json:"insurance_costs"`
	DepreciationCosts float64 `json:"depreciation_costs"`
	TotalYearCost     float64 `json:"total_year_cost"`
	CumulativeCost    float64 `json:"cumulative_cost"`
}

// CostSummary сводка затрат за весь период
type CostSummary struct {
	InitialCosts           float64 `json:"initial_costs"`
	TotalMonthlyPayments   float64 `json:"total_monthly_payments"`
	TotalOperatingCosts    float64 `json:"total_operating_costs"`
	TotalMaintenanceCosts  float64 `json:"total_maintenance_costs"`
	TotalInsuranceCosts    float64 `json:"total_insurance_costs"`
	TotalDepreciationCosts float64 `json:"total_depreciation_costs"`
	EndOfTermValue         float64 `json:"end_of_term_value"`
	NetTotalCost           float64 `json:"net_total_cost"`
}

// TCOResult результат расчета для одной модели владения
type TCOResult struct {
	OwnershipType   market.OwnershipType `json:"ownership_type"`
	TotalCost       float64              `json:"total_cost"`
	YearlyBreakdown []YearlyBreakdown    `json:"yearly_breakdown"`
	Summary         CostSummary          `json:"summary"`
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month               int     `json:"month"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Months            int     `json:"months"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// LoanSchedule представляет результат расчета графика кредита
type LoanSchedule struct {
	Summary  LoanSummary     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// OptionSummary итоги одной модели в сравнении. ExtraCost показывает
// переплату относительно самой выгодной модели.
type OptionSummary struct {
	OwnershipType  market.OwnershipType `json:"ownership_type"`
	NetTotalCost   float64              `json:"net_total_cost"`
	MonthlyAverage float64              `json:"monthly_average"`
	ExtraCost      float64              `json:"extra_cost"`
}

// Comparison результат сравнения моделей владения
type Comparison struct {
	Years          int                  `json:"years"`
	Options        []OptionSummary      `json:"options"`
	Cheapest       market.OwnershipType `json:"cheapest"`
	Recommendation string               `json:"recommendation"`
}
