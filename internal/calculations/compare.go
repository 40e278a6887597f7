package calculations

import (
	"fmt"

	"github.com/nordic-tco/tco-calculator/internal/market"
	"github.com/nordic-tco/tco-calculator/pkg/utils"
)

// CalculateAll рассчитывает стоимость владения для каждой модели владения
// на одних и тех же данных
func CalculateAll(formData FormData, countryConfig market.CountryConfig) map[market.OwnershipType]TCOResult {
	results := make(map[market.OwnershipType]TCOResult, len(market.OwnershipTypes))
	for _, ownership := range market.OwnershipTypes {
		results[ownership] = Calculate(CalculationInput{
			FormData:      formData,
			OwnershipType: ownership,
			CountryConfig: countryConfig,
		})
	}
	return results
}

// Compare сравнивает результаты моделей владения. При равенстве сумм
// выигрывает модель, идущая раньше в порядке покупка, кредит, лизинг.
func Compare(results map[market.OwnershipType]TCOResult, years int) Comparison {
	cmp := Comparison{Years: years}

	months := float64(years * 12)
	found := false
	var best float64
	for _, ownership := range market.OwnershipTypes {
		res, ok := results[ownership]
		if !ok {
			continue
		}
		option := OptionSummary{
			OwnershipType: ownership,
			NetTotalCost:  res.Summary.NetTotalCost,
		}
		if months > 0 {
			option.MonthlyAverage = res.Summary.NetTotalCost / months
		}
		cmp.Options = append(cmp.Options, option)

		if !found || res.Summary.NetTotalCost < best {
			found = true
			best = res.Summary.NetTotalCost
			cmp.Cheapest = ownership
		}
	}

	for i := range cmp.Options {
		cmp.Options[i].ExtraCost = cmp.Options[i].NetTotalCost - best
	}
	cmp.Recommendation = recommendation(cmp)

	return cmp
}

func recommendation(cmp Comparison) string {
	if len(cmp.Options) == 0 {
		return "Нет результатов для сравнения."
	}
	if len(cmp.Options) == 1 {
		return fmt.Sprintf("Рассчитана только одна модель владения: %s.", cmp.Cheapest)
	}

	// ближайшая альтернатива
	var runnerUp *OptionSummary
	for i := range cmp.Options {
		o := &cmp.Options[i]
		if o.OwnershipType == cmp.Cheapest {
			continue
		}
		if runnerUp == nil || o.ExtraCost < runnerUp.ExtraCost {
			runnerUp = o
		}
	}

	if runnerUp.ExtraCost == 0 {
		return fmt.Sprintf("Модели %s и %s обходятся одинаково за %d г.", cmp.Cheapest, runnerUp.OwnershipType, cmp.Years)
	}
	return fmt.Sprintf("Модель %s выгоднее всего за %d г.: экономия %.2f относительно %s.",
		cmp.Cheapest, cmp.Years, utils.Round2(runnerUp.ExtraCost), runnerUp.OwnershipType)
}
