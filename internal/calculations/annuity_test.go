package calculations

import (
	"math"
	"testing"
)

func TestAnnuitySchedule(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		months            int
		wantError         bool
		checkSchedule     func(*testing.T, *LoanSchedule)
	}{
		{
			name:              "basic annuity",
			principal:         1000000,
			annualRatePercent: 12,
			months:            12,
			checkSchedule: func(t *testing.T, result *LoanSchedule) {
				if len(result.Schedule) != 12 {
					t.Errorf("expected 12 months, got %d", len(result.Schedule))
				}
				if result.Summary.Principal != 1000000 {
					t.Errorf("expected principal 1000000, got %f", result.Summary.Principal)
				}
				if result.Summary.MonthlyPayment <= 0 {
					t.Error("monthly payment should be positive")
				}
				if result.Summary.TotalPaid <= result.Summary.Principal {
					t.Error("total paid should be greater than principal")
				}
				// остаток в последнем месяце равен 0
				lastMonth := result.Schedule[len(result.Schedule)-1]
				if lastMonth.RemainingPrincipal != 0 {
					t.Errorf("expected remaining principal 0, got %f", lastMonth.RemainingPrincipal)
				}
			},
		},
		{
			name:              "zero rate",
			principal:         100000,
			annualRatePercent: 0,
			months:            10,
			checkSchedule: func(t *testing.T, result *LoanSchedule) {
				if result.Summary.MonthlyPayment != 10000 {
					t.Errorf("expected monthly payment 10000, got %f", result.Summary.MonthlyPayment)
				}
				if result.Summary.TotalInterest != 0 {
					t.Errorf("expected total interest 0, got %f", result.Summary.TotalInterest)
				}
			},
		},
		{
			name:              "car loan matches engine payment",
			principal:         400000,
			annualRatePercent: 5.5,
			months:            36,
			checkSchedule: func(t *testing.T, result *LoanSchedule) {
				want := MonthlyAnnuityPayment(400000, 5.5, 36)
				if math.Abs(result.Summary.MonthlyPayment-want) > 0.005 {
					t.Errorf("expected monthly payment %f, got %f", want, result.Summary.MonthlyPayment)
				}
				if math.Abs(result.Summary.TotalPaid-want*36) > 1 {
					t.Errorf("expected total paid close to %f, got %f", want*36, result.Summary.TotalPaid)
				}
			},
		},
		{
			name:              "zero months",
			principal:         100000,
			annualRatePercent: 5,
			months:            0,
			wantError:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AnnuitySchedule(tt.principal, tt.annualRatePercent, tt.months)
			if (err != nil) != tt.wantError {
				t.Errorf("AnnuitySchedule() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if !tt.wantError && tt.checkSchedule != nil {
				tt.checkSchedule(t, result)
			}
		})
	}
}

func TestMonthlyAnnuityPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		months    int
		want      float64
	}{
		{name: "one year at 12 percent", principal: 1000000, rate: 12, months: 12, want: 88848.79},
		{name: "non-positive principal degrades to zero", principal: -5000, rate: 5, months: 36, want: 0},
		{name: "zero principal", principal: 0, rate: 5, months: 36, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyAnnuityPayment(tt.principal, tt.rate, tt.months)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("MonthlyAnnuityPayment() = %v, want %v", got, tt.want)
			}
		})
	}
}
