package market

import "sort"

// OwnershipType модель владения автомобилем
type OwnershipType string

const (
	Purchase OwnershipType = "purchase"
	Finance  OwnershipType = "finance"
	Lease    OwnershipType = "lease"
)

// OwnershipTypes перечисляет модели в порядке сравнения
var OwnershipTypes = []OwnershipType{Purchase, Finance, Lease}

// Valid сообщает, известна ли модель владения
func (o OwnershipType) Valid() bool {
	switch o {
	case Purchase, Finance, Lease:
		return true
	}
	return false
}

// VehicleCategory категория автомобиля
type VehicleCategory string

const (
	Compact VehicleCategory = "compact"
	Sedan   VehicleCategory = "sedan"
	SUV     VehicleCategory = "suv"
	Luxury  VehicleCategory = "luxury"
)

// Categories перечисляет все категории
var Categories = []VehicleCategory{Compact, Sedan, SUV, Luxury}

// Valid сообщает, известна ли категория
func (c VehicleCategory) Valid() bool {
	switch c {
	case Compact, Sedan, SUV, Luxury:
		return true
	}
	return false
}

// FuelType тип топлива
type FuelType string

const (
	Petrol   FuelType = "petrol"
	Diesel   FuelType = "diesel"
	Electric FuelType = "electric"
	Hybrid   FuelType = "hybrid"
)

// FuelTypes перечисляет все типы топлива
var FuelTypes = []FuelType{Petrol, Diesel, Electric, Hybrid}

// Valid сообщает, известен ли тип топлива
func (f FuelType) Valid() bool {
	switch f {
	case Petrol, Diesel, Electric, Hybrid:
		return true
	}
	return false
}

// Location тип местности проживания владельца
type Location string

const (
	Urban    Location = "urban"
	Suburban Location = "suburban"
	Rural    Location = "rural"
)

// Locations перечисляет все типы местности
var Locations = []Location{Urban, Suburban, Rural}

// Valid сообщает, известен ли тип местности
func (l Location) Valid() bool {
	switch l {
	case Urban, Suburban, Rural:
		return true
	}
	return false
}

// MaintenanceCost базовая стоимость обслуживания категории
type MaintenanceCost struct {
	Annual float64 `json:"annual"`
	PerKm  float64 `json:"per_km"`
}

// LocationMultiplier множители страховки и обслуживания для местности
type LocationMultiplier struct {
	Insurance   float64 `json:"insurance"`
	Maintenance float64 `json:"maintenance"`
}

// WinterEquipmentCosts стоимость зимнего оснащения
type WinterEquipmentCosts struct {
	Tires        float64 `json:"tires"`
	Storage      float64 `json:"storage"`
	Installation float64 `json:"installation"`
}

// WinterEquipment фиксированные затраты на зимнее оснащение. В расчет
// начальных затрат входят только шины.
var WinterEquipment = WinterEquipmentCosts{
	Tires:        6000,
	Storage:      1000,
	Installation: 800,
}

// MaintenanceBase возвращает базовую стоимость обслуживания для категории
func MaintenanceBase(c VehicleCategory) MaintenanceCost {
	switch c {
	case Compact:
		return MaintenanceCost{Annual: 8000, PerKm: 0.15}
	case Sedan:
		return MaintenanceCost{Annual: 12000, PerKm: 0.18}
	case SUV:
		return MaintenanceCost{Annual: 15000, PerKm: 0.22}
	case Luxury:
		return MaintenanceCost{Annual: 25000, PerKm: 0.35}
	}
	return MaintenanceCost{}
}

// InsuranceBase возвращает годовую базовую стоимость страховки для категории
func InsuranceBase(c VehicleCategory) float64 {
	switch c {
	case Compact:
		return 8000
	case Sedan:
		return 12000
	case SUV:
		return 16000
	case Luxury:
		return 28000
	}
	return 0
}

func depreciationTable(c VehicleCategory) []float64 {
	switch c {
	case Compact:
		return []float64{0.15, 0.12, 0.1, 0.08, 0.08}
	case Sedan:
		return []float64{0.18, 0.15, 0.12, 0.1, 0.08}
	case SUV:
		return []float64{0.16, 0.13, 0.11, 0.09, 0.08}
	case Luxury:
		return []float64{0.25, 0.2, 0.15, 0.12, 0.1}
	}
	return nil
}

// DepreciationRates возвращает копию графика амортизации по годам
func DepreciationRates(c VehicleCategory) []float64 {
	return append([]float64(nil), depreciationTable(c)...)
}

// DepreciationRate возвращает ставку амортизации для года (с 1).
// За пределами графика повторяется последняя ставка.
func DepreciationRate(c VehicleCategory, year int) float64 {
	rates := depreciationTable(c)
	if len(rates) == 0 {
		return 0
	}
	if year >= 1 && year <= len(rates) {
		return rates[year-1]
	}
	return rates[len(rates)-1]
}

// LocationMultipliers возвращает множители для местности
func LocationMultipliers(l Location) LocationMultiplier {
	switch l {
	case Urban:
		return LocationMultiplier{Insurance: 1.2, Maintenance: 1.0}
	case Suburban:
		return LocationMultiplier{Insurance: 1.0, Maintenance: 1.0}
	case Rural:
		return LocationMultiplier{Insurance: 0.8, Maintenance: 1.15}
	}
	return LocationMultiplier{}
}

type agePoint struct {
	age        float64
	multiplier float64
}

// ageInsurance отсортирован по возрасту
var ageInsurance = []agePoint{
	{18, 2.5},
	{19, 2.3},
	{20, 2.1},
	{21, 1.9},
	{22, 1.7},
	{23, 1.5},
	{24, 1.4},
	{25, 1.2},
	{30, 1.0},
	{40, 0.9},
	{50, 0.85},
	{60, 0.9},
	{70, 1.1},
}

// AgeInsuranceMultiplier возвращает множитель страховки для возраста водителя.
// Между узлами таблицы значение интерполируется линейно, за ее пределами
// берется ближайший крайний узел.
func AgeInsuranceMultiplier(age float64) float64 {
	first, last := ageInsurance[0], ageInsurance[len(ageInsurance)-1]
	if age <= first.age {
		return first.multiplier
	}
	if age >= last.age {
		return last.multiplier
	}

	// первый узел строго больше age; предыдущий <= age
	i := sort.Search(len(ageInsurance), func(i int) bool { return ageInsurance[i].age > age })
	if i == 0 || i == len(ageInsurance) {
		// NaN
		return last.multiplier
	}
	lo, hi := ageInsurance[i-1], ageInsurance[i]
	if age == lo.age {
		return lo.multiplier
	}
	ratio := (age - lo.age) / (hi.age - lo.age)
	return lo.multiplier + ratio*(hi.multiplier-lo.multiplier)
}

// AgeInsuranceTable возвращает узлы возрастной таблицы в виде карты
func AgeInsuranceTable() map[int]float64 {
	out := make(map[int]float64, len(ageInsurance))
	for _, p := range ageInsurance {
		out[int(p.age)] = p.multiplier
	}
	return out
}
