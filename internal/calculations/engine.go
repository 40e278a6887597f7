package calculations

import (
	"math"

	"github.com/nordic-tco/tco-calculator/internal/market"
)

const (
	maintenanceAgeIncrease   = 0.05
	electricMaintenanceRatio = 0.6
	experienceDiscountStep   = 0.02
	maxExperienceDiscount    = 0.2
)

// Calculate рассчитывает совокупную стоимость владения для одной модели.
// Функция детерминирована и не возвращает ошибок: входные данные не
// проверяются, вырожденные значения дают нулевые или вырожденные суммы.
func Calculate(input CalculationInput) TCOResult {
	breakdown := yearlyBreakdown(input)
	summary := Summarize(input.OwnershipType, input.FormData.Vehicle.PurchasePrice, breakdown)

	return TCOResult{
		OwnershipType:   input.OwnershipType,
		TotalCost:       summary.NetTotalCost,
		YearlyBreakdown: breakdown,
		Summary:         summary,
	}
}

func yearlyBreakdown(input CalculationInput) []YearlyBreakdown {
	years := input.FormData.Period.Years
	if years < 0 {
		years = 0
	}
	breakdown := make([]YearlyBreakdown, 0, years)

	// стоимость автомобиля на начало года, переносится из года в год
	value := input.FormData.Vehicle.PurchasePrice
	cumulative := 0.0
	operating := operatingCosts(input)

	for year := 1; year <= years; year++ {
		initial := 0.0
		if year == 1 {
			initial = initialCosts(input)
		}
		payments := annualPayments(input, year)
		maintenance := maintenanceCosts(input, year)
		insurance := insuranceCosts(input, year)

		depreciation := 0.0
		if input.OwnershipType != market.Lease {
			rate := market.DepreciationRate(input.FormData.Vehicle.VehicleCategory, year)
			depreciation = value * rate
			value *= 1 - rate
		}

		total := initial + payments + operating + maintenance + insurance + depreciation
		cumulative += total

		breakdown = append(breakdown, YearlyBreakdown{
			Year:              year,
			InitialCosts:      initial,
			MonthlyPayments:   payments,
			OperatingCosts:    operating,
			MaintenanceCosts:  maintenance,
			InsuranceCosts:    insurance,
			DepreciationCosts: depreciation,
			TotalYearCost:     total,
			CumulativeCost:    cumulative,
		})
	}

	return breakdown
}

func initialCosts(input CalculationInput) float64 {
	vehicle := input.FormData.Vehicle
	country := input.CountryConfig

	var costs float64
	switch input.OwnershipType {
	case market.Purchase, market.Finance:
		vat := country.VATRate
		if vehicle.FuelType == market.Electric {
			vat = country.VATRate * (1 - country.ElectricVehicleIncentive)
		}
		costs = input.FormData.Purchase.DownPayment
		costs += vehicle.PurchasePrice * country.RegistrationTax
		costs += vehicle.PurchasePrice * vat
	case market.Lease:
		// взнос плюс первый месяц
		lease := input.FormData.Lease
		costs = lease.DownPayment + lease.MonthlyPayment
	}

	if country.WinterTireRequirement {
		costs += market.WinterEquipment.Tires
	}
	return costs
}

func annualPayments(input CalculationInput, year int) float64 {
	switch input.OwnershipType {
	case market.Purchase:
		return 0
	case market.Finance:
		return annualLoanPayments(input.FormData, year)
	case market.Lease:
		return annualLeasePayments(input.FormData, year)
	}
	return 0
}

func annualLoanPayments(form FormData, year int) float64 {
	purchase := form.Purchase
	if !purchase.FinancingRequired || purchase.LoanTermYears == nil || purchase.InterestRate == nil {
		return 0
	}
	termYears, rate := *purchase.LoanTermYears, *purchase.InterestRate
	if termYears == 0 || rate == 0 || year > termYears {
		return 0
	}

	principal := form.Vehicle.PurchasePrice - purchase.DownPayment
	return MonthlyAnnuityPayment(principal, rate, termYears*12) * 12
}

func annualLeasePayments(form FormData, year int) float64 {
	lease := form.Lease
	if float64(year) > float64(lease.LeaseTerm)/12 {
		return 0
	}

	mileage := form.Vehicle.EstimatedAnnualMileage
	excess := 0.0
	if mileage > lease.AnnualMileageLimit {
		excess = (mileage - lease.AnnualMileageLimit) * lease.ExcessMileageFee
	}
	return lease.MonthlyPayment*12 + excess
}

func operatingCosts(input CalculationInput) float64 {
	vehicle := input.FormData.Vehicle
	consumption := vehicle.FuelConsumption / 100 * vehicle.EstimatedAnnualMileage

	if vehicle.FuelType == market.Electric {
		return consumption * input.CountryConfig.AverageElectricityPrice
	}
	return consumption * input.CountryConfig.AverageFuelPrice
}

func maintenanceCosts(input CalculationInput, year int) float64 {
	vehicle := input.FormData.Vehicle

	base := market.MaintenanceBase(vehicle.VehicleCategory)
	costs := base.Annual + base.PerKm*vehicle.EstimatedAnnualMileage
	costs *= market.LocationMultipliers(input.FormData.User.Location).Maintenance

	age := vehicleAge(input.FormData, year)
	costs *= 1 + float64(age)*maintenanceAgeIncrease

	if vehicle.FuelType == market.Electric {
		costs *= electricMaintenanceRatio
	}
	return costs
}

// vehicleAge возраст автомобиля в году владения year
func vehicleAge(form FormData, year int) int {
	reference := form.Period.ReferenceYear
	if reference == 0 {
		reference = form.Vehicle.Year
	}
	return reference - form.Vehicle.Year + year - 1
}

func insuranceCosts(input CalculationInput, year int) float64 {
	user := input.FormData.User

	costs := market.InsuranceBase(input.FormData.Vehicle.VehicleCategory)
	costs *= input.CountryConfig.AverageInsuranceMultiplier
	costs *= market.AgeInsuranceMultiplier(float64(user.Age + year - 1))
	costs *= market.LocationMultipliers(user.Location).Insurance

	discount := math.Min(float64(user.DrivingExperience)*experienceDiscountStep, maxExperienceDiscount)
	costs *= 1 - discount
	return costs
}

// Summarize сводит годовые затраты в итог. Начальные затраты берутся только
// из первого года, остаточная стоимость для лизинга равна нулю.
func Summarize(ownership market.OwnershipType, purchasePrice float64, breakdown []YearlyBreakdown) CostSummary {
	var s CostSummary
	if len(breakdown) > 0 {
		s.InitialCosts = breakdown[0].InitialCosts
	}

	for _, y := range breakdown {
		s.TotalMonthlyPayments += y.MonthlyPayments
		s.TotalOperatingCosts += y.OperatingCosts
		s.TotalMaintenanceCosts += y.MaintenanceCosts
		s.TotalInsuranceCosts += y.InsuranceCosts
		s.TotalDepreciationCosts += y.DepreciationCosts
	}

	switch ownership {
	case market.Purchase, market.Finance:
		s.EndOfTermValue = purchasePrice - s.TotalDepreciationCosts
	case market.Lease:
		s.EndOfTermValue = 0
	}

	s.NetTotalCost = s.InitialCosts +
		s.TotalMonthlyPayments +
		s.TotalOperatingCosts +
		s.TotalMaintenanceCosts +
		s.TotalInsuranceCosts +
		s.TotalDepreciationCosts -
		s.EndOfTermValue

	return s
}
