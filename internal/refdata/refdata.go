// Package refdata holds the immutable reference tables the compensation
// engine resolves against: salary bands by location and grade, currency
// metadata, and location-specific annual workday norms. The tables are fixed
// at build time and never mutated; a Store is safe for concurrent reads.
package refdata

import (
	"errors"
	"fmt"
	"sort"
)

// LocationCode identifies an office location. The set is closed; every code
// must resolve in all three reference tables.
type LocationCode string

// GradeCode identifies a job level. Salary bands exist for A1-B3; C1-C3 are
// offered in pickers but deliberately carry no band (handled by the input
// normalizer's fallback policy).
type GradeCode string

const (
	LocBLR LocationCode = "BLR"
	LocMEX LocationCode = "MEX"
	LocLIS LocationCode = "LIS"
	LocLON LocationCode = "LON"
	LocROM LocationCode = "ROM"
	LocARG LocationCode = "ARG"
	LocAUS LocationCode = "AUS"
	LocMAD LocationCode = "MAD"
	LocMTV LocationCode = "MTV"
	LocTLV LocationCode = "TLV"
)

const (
	GradeA1 GradeCode = "A1"
	GradeA2 GradeCode = "A2"
	GradeA3 GradeCode = "A3"
	GradeB1 GradeCode = "B1"
	GradeB2 GradeCode = "B2"
	GradeB3 GradeCode = "B3"
	GradeC1 GradeCode = "C1"
	GradeC2 GradeCode = "C2"
	GradeC3 GradeCode = "C3"
)

// FallbackLocation and FallbackGrade are the documented pair an unresolvable
// profile is reset to before computation.
const (
	FallbackLocation = LocBLR
	FallbackGrade    = GradeA2
)

// ErrNotFound is returned when a code falls outside the closed reference
// sets. Callers treat it as an input-validation signal, not a failure.
var ErrNotFound = errors.New("refdata: code not found")

// CurrencyInfo describes a location's local currency. RateToReference is the
// number of local-currency units per one reference-currency (INR) unit's
// worth; the reference location carries rate 1.
type CurrencyInfo struct {
	Symbol          string  `json:"symbol"`
	RateToReference float64 `json:"rateToReference"`
	Name            string  `json:"name"`
}

// LocationOption is a display-ready location entry for UI population.
type LocationOption struct {
	Code  LocationCode `json:"code"`
	Label string       `json:"label"`
}

// GradeOption is a display-ready grade entry for UI population. HasBand
// reports whether a salary band exists for the grade.
type GradeOption struct {
	Code    GradeCode `json:"code"`
	Label   string    `json:"label"`
	HasBand bool      `json:"hasSalaryBand"`
}

var salaryTable = map[LocationCode]map[GradeCode]int64{
	LocBLR: {GradeA1: 600000, GradeA2: 800000, GradeA3: 1000000, GradeB1: 1200000, GradeB2: 1400000, GradeB3: 1600000},
	LocMEX: {GradeA1: 450000, GradeA2: 600000, GradeA3: 750000, GradeB1: 900000, GradeB2: 1050000, GradeB3: 1200000},
	LocLIS: {GradeA1: 2400000, GradeA2: 3200000, GradeA3: 4000000, GradeB1: 4800000, GradeB2: 5600000, GradeB3: 6400000},
	LocLON: {GradeA1: 4800000, GradeA2: 6400000, GradeA3: 8000000, GradeB1: 9600000, GradeB2: 11200000, GradeB3: 12800000},
	LocROM: {GradeA1: 1800000, GradeA2: 2400000, GradeA3: 3000000, GradeB1: 3600000, GradeB2: 4200000, GradeB3: 4800000},
	LocARG: {GradeA1: 350000, GradeA2: 470000, GradeA3: 590000, GradeB1: 710000, GradeB2: 830000, GradeB3: 950000},
	LocAUS: {GradeA1: 5500000, GradeA2: 7300000, GradeA3: 9100000, GradeB1: 10900000, GradeB2: 12700000, GradeB3: 14500000},
	LocMAD: {GradeA1: 2200000, GradeA2: 2900000, GradeA3: 3600000, GradeB1: 4300000, GradeB2: 5000000, GradeB3: 5700000},
	LocMTV: {GradeA1: 12000000, GradeA2: 16000000, GradeA3: 20000000, GradeB1: 24000000, GradeB2: 28000000, GradeB3: 32000000},
	LocTLV: {GradeA1: 4000000, GradeA2: 5300000, GradeA3: 6600000, GradeB1: 8000000, GradeB2: 9300000, GradeB3: 10600000},
}

var currencyTable = map[LocationCode]CurrencyInfo{
	LocBLR: {Symbol: "Rs", RateToReference: 1, Name: "INR"},
	LocMEX: {Symbol: "MX$", RateToReference: 0.6, Name: "MXN"},
	LocLIS: {Symbol: "EUR", RateToReference: 0.011, Name: "EUR"},
	LocLON: {Symbol: "GBP", RateToReference: 0.0095, Name: "GBP"},
	LocROM: {Symbol: "RON", RateToReference: 0.055, Name: "RON"},
	LocARG: {Symbol: "AR$", RateToReference: 0.105, Name: "ARS"},
	LocAUS: {Symbol: "AU$", RateToReference: 0.018, Name: "AUD"},
	LocMAD: {Symbol: "EUR", RateToReference: 0.011, Name: "EUR"},
	LocMTV: {Symbol: "USD", RateToReference: 0.012, Name: "USD"},
	LocTLV: {Symbol: "ILS", RateToReference: 0.044, Name: "ILS"},
}

var workdaysTable = map[LocationCode]int{
	LocARG: 236,
	LocAUS: 252,
	LocBLR: 236,
	LocLIS: 220,
	LocLON: 227,
	LocMAD: 230,
	LocMEX: 241,
	LocMTV: 252,
	LocROM: 233,
	LocTLV: 224,
}

var locationLabels = map[LocationCode]string{
	LocBLR: "🇮🇳 Bangalore, India",
	LocMEX: "🇲🇽 Mexico City, Mexico",
	LocLIS: "🇵🇹 Lisbon, Portugal",
	LocLON: "🇬🇧 London, UK",
	LocROM: "🇷🇴 Bucharest, Romania",
	LocARG: "🇦🇷 Buenos Aires, Argentina",
	LocAUS: "🇦🇺 Sydney, Australia",
	LocMAD: "🇪🇸 Madrid, Spain",
	LocMTV: "🇺🇸 Mountain View, USA",
	LocTLV: "🇮🇱 Tel Aviv, Israel",
}

var gradeLabels = map[GradeCode]string{
	GradeA1: "A1 - Graduate Engineer",
	GradeA2: "A2 - Engineer",
	GradeA3: "A3 - Senior Engineer II",
	GradeB1: "B1 - Senior Engineer",
	GradeB2: "B2 - Team Lead",
	GradeB3: "B3 - Principal Engineer",
	GradeC1: "C1 - Manager",
	GradeC2: "C2 - Senior Manager",
	GradeC3: "C3 - Director",
}

// offeredGrades is the grade picker set: band grades A1/A2/B1/B2 plus the
// band-less management track C1-C3.
var offeredGrades = []GradeCode{GradeA1, GradeA2, GradeB1, GradeB2, GradeC1, GradeC2, GradeC3}

var bandGrades = []GradeCode{GradeA1, GradeA2, GradeA3, GradeB1, GradeB2, GradeB3}

// Store exposes read-only lookups over the reference tables.
type Store struct {
	salaries   map[LocationCode]map[GradeCode]int64
	currencies map[LocationCode]CurrencyInfo
	workdays   map[LocationCode]int
}

// NewStore returns a Store over the built-in reference tables.
func NewStore() *Store {
	return &Store{
		salaries:   salaryTable,
		currencies: currencyTable,
		workdays:   workdaysTable,
	}
}

// SalaryFor returns the annual base salary band for a location and grade in
// the location's local currency.
func (s *Store) SalaryFor(loc LocationCode, grade GradeCode) (int64, error) {
	grades, ok := s.salaries[loc]
	if !ok {
		return 0, fmt.Errorf("salary band for location %s: %w", loc, ErrNotFound)
	}
	salary, ok := grades[grade]
	if !ok {
		return 0, fmt.Errorf("salary band for grade %s at %s: %w", grade, loc, ErrNotFound)
	}
	return salary, nil
}

// CurrencyFor returns the currency metadata for a location.
func (s *Store) CurrencyFor(loc LocationCode) (CurrencyInfo, error) {
	info, ok := s.currencies[loc]
	if !ok {
		return CurrencyInfo{}, fmt.Errorf("currency for location %s: %w", loc, ErrNotFound)
	}
	return info, nil
}

// WorkdaysFor returns the annual workday norm for a location.
func (s *Store) WorkdaysFor(loc LocationCode) (int, error) {
	days, ok := s.workdays[loc]
	if !ok {
		return 0, fmt.Errorf("workdays for location %s: %w", loc, ErrNotFound)
	}
	return days, nil
}

// Locations enumerates all known locations with display labels, sorted by
// code for stable output.
func (s *Store) Locations() []LocationOption {
	options := make([]LocationOption, 0, len(s.salaries))
	for loc := range s.salaries {
		options = append(options, LocationOption{Code: loc, Label: locationLabels[loc]})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Code < options[j].Code })
	return options
}

// OfferedGrades enumerates the grades offered in pickers, in picker order.
// Grades without a salary band are included with HasBand false.
func (s *Store) OfferedGrades() []GradeOption {
	options := make([]GradeOption, 0, len(offeredGrades))
	for _, grade := range offeredGrades {
		_, hasBand := s.salaries[FallbackLocation][grade]
		options = append(options, GradeOption{Code: grade, Label: gradeLabels[grade], HasBand: hasBand})
	}
	return options
}

// BandGrades enumerates the grades that carry a salary band.
func (s *Store) BandGrades() []GradeCode {
	grades := make([]GradeCode, len(bandGrades))
	copy(grades, bandGrades)
	return grades
}

// Validate checks the closed-set invariant: every location present in any
// table must have exactly one entry in all three, and every band location
// must cover every band grade. A violation is a configuration error and must
// abort startup before the first computation.
func (s *Store) Validate() error {
	for loc, grades := range s.salaries {
		for _, grade := range bandGrades {
			if _, ok := grades[grade]; !ok {
				return fmt.Errorf("location %s missing salary band for grade %s", loc, grade)
			}
		}
		if _, ok := s.currencies[loc]; !ok {
			return fmt.Errorf("location %s missing currency info", loc)
		}
		if _, ok := s.workdays[loc]; !ok {
			return fmt.Errorf("location %s missing workdays entry", loc)
		}
	}
	for loc := range s.currencies {
		if _, ok := s.salaries[loc]; !ok {
			return fmt.Errorf("currency table lists unknown location %s", loc)
		}
	}
	for loc := range s.workdays {
		if _, ok := s.salaries[loc]; !ok {
			return fmt.Errorf("workdays table lists unknown location %s", loc)
		}
	}
	return nil
}
