package validators

import (
	"errors"
	"fmt"

	"github.com/nordic-tco/tco-calculator/internal/calculations"
	"github.com/nordic-tco/tco-calculator/internal/config"
	"github.com/nordic-tco/tco-calculator/internal/market"
	"github.com/nordic-tco/tco-calculator/pkg/utils"
)

const (
	minDriverAge = 16
	maxDriverAge = 120
	minModelYear = 1900
	maxModelYear = 2100
	maxFeePerKm  = 1000
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPurchasePrice)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 1, cfg.MaxLoanTermYears*12)
}

// CheckOwnershipType проверяет модель владения
func CheckOwnershipType(o market.OwnershipType) error {
	if !o.Valid() {
		return fmt.Errorf("ownership_type: неизвестная модель владения %q", o)
	}
	return nil
}

// CheckFormData проверяет данные формы целиком и возвращает все найденные ошибки
func CheckFormData(cfg *config.Config, form calculations.FormData) error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	v := form.Vehicle
	add(ValidatePositiveNumber("vehicle.purchase_price", v.PurchasePrice, 1e-9, cfg.MaxPurchasePrice))
	add(ValidateIntRange("vehicle.year", v.Year, minModelYear, maxModelYear))
	add(ValidatePositiveNumber("vehicle.fuel_consumption", v.FuelConsumption, 0, 100))
	add(ValidatePositiveNumber("vehicle.estimated_annual_mileage", v.EstimatedAnnualMileage, 0, cfg.MaxAnnualMileage))
	if !v.FuelType.Valid() {
		add(fmt.Errorf("vehicle.fuel_type: неизвестный тип топлива %q", v.FuelType))
	}
	if !v.VehicleCategory.Valid() {
		add(fmt.Errorf("vehicle.vehicle_category: неизвестная категория %q", v.VehicleCategory))
	}

	p := form.Purchase
	add(ValidatePositiveNumber("purchase.down_payment", p.DownPayment, 0, cfg.MaxPurchasePrice))
	add(ValidatePositiveNumber("purchase.trade_in_value", p.TradeInValue, 0, cfg.MaxPurchasePrice))
	if p.FinancingRequired {
		if p.LoanTermYears == nil {
			add(errors.New("purchase.loan_term_years: обязателен при оформлении кредита"))
		} else {
			add(ValidateIntRange("purchase.loan_term_years", *p.LoanTermYears, 1, cfg.MaxLoanTermYears))
		}
		if p.InterestRate == nil {
			add(errors.New("purchase.interest_rate: обязателен при оформлении кредита"))
		} else {
			add(ValidatePositiveNumber("purchase.interest_rate", *p.InterestRate, 0, cfg.MaxRate))
		}
	}

	l := form.Lease
	add(ValidatePositiveNumber("lease.monthly_payment", l.MonthlyPayment, 0, cfg.MaxPurchasePrice))
	add(ValidatePositiveNumber("lease.down_payment", l.DownPayment, 0, cfg.MaxPurchasePrice))
	add(ValidateIntRange("lease.lease_term", l.LeaseTerm, 0, cfg.MaxLeaseTermMonths))
	add(ValidatePositiveNumber("lease.annual_mileage_limit", l.AnnualMileageLimit, 0, cfg.MaxAnnualMileage))
	add(ValidatePositiveNumber("lease.excess_mileage_fee", l.ExcessMileageFee, 0, maxFeePerKm))
	add(ValidatePositiveNumber("lease.residual_value", l.ResidualValue, 0, cfg.MaxPurchasePrice))

	u := form.User
	if !u.Country.Valid() {
		add(fmt.Errorf("user.country: неизвестная страна %q", u.Country))
	}
	if !u.Location.Valid() {
		add(fmt.Errorf("user.location: неизвестный тип местности %q", u.Location))
	}
	add(ValidateIntRange("user.age", u.Age, minDriverAge, maxDriverAge))
	add(ValidateIntRange("user.driving_experience", u.DrivingExperience, 0, u.Age))

	add(ValidateIntRange("period.years", form.Period.Years, 1, cfg.MaxYears))
	if form.Period.ReferenceYear != 0 {
		add(ValidateIntRange("period.reference_year", form.Period.ReferenceYear, minModelYear, maxModelYear))
	}

	return errors.Join(errs...)
}
