package calculations

import (
	"fmt"
	"math"

	"github.com/nordic-tco/tco-calculator/pkg/utils"
)

// MonthlyAnnuityPayment рассчитывает ежемесячный аннуитетный платеж.
// Вычисляется по формуле P*r*(1+r)^n / ((1+r)^n - 1) без округления.
func MonthlyAnnuityPayment(principal, annualRatePercent float64, months int) float64 {
	if principal <= 0 {
		return 0
	}
	r := annualRatePercent / 12 / 100
	growth := math.Pow(1+r, float64(months))
	return (principal * r * growth) / (growth - 1)
}

// AnnuitySchedule рассчитывает помесячный график аннуитетного кредита
func AnnuitySchedule(principal, annualRatePercent float64, months int) (*LoanSchedule, error) {
	if months <= 0 {
		return nil, fmt.Errorf("срок кредита должен быть положительным: %d", months)
	}

	P := principal
	n := months
	r := annualRatePercent / 12 / 100

	var monthlyPayment float64
	if r == 0.0 {
		monthlyPayment = P / float64(n)
	} else {
		monthlyPayment = MonthlyAnnuityPayment(P, annualRatePercent, n)
	}

	schedule := make([]ScheduleEntry, 0, n)
	remaining := P
	cumI := 0.0
	cumP := 0.0
	totalPaid := 0.0

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := monthlyPayment - interest
		monthly := monthlyPayment

		// последний платеж закрывает остаток после округлений
		if m == n {
			principalComponent = remaining
			monthly = principalComponent + interest
		}

		interest = utils.Round2(interest)
		principalComponent = utils.Round2(principalComponent)
		monthly = utils.Round2(monthly)

		remaining = utils.Round2(remaining - principalComponent)
		cumI = utils.Round2(cumI + interest)
		cumP = utils.Round2(cumP + principalComponent)
		totalPaid = utils.Round2(totalPaid + monthly)

		if remaining < -0.01 {
			return nil, fmt.Errorf("численная ошибка: остаток кредита стал отрицательным")
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             monthly,
			Interest:            interest,
			PrincipalComponent:  principalComponent,
			RemainingPrincipal:  math.Max(remaining, 0),
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})
	}

	return &LoanSchedule{
		Summary: LoanSummary{
			Principal:         utils.Round2(P),
			AnnualRatePercent: utils.Round2(annualRatePercent),
			Months:            n,
			MonthlyPayment:    utils.Round2(monthlyPayment),
			TotalPaid:         totalPaid,
			TotalInterest:     cumI,
		},
		Schedule: schedule,
	}, nil
}
