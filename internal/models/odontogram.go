package models

import "fmt"

// ToothStatus is a clinical condition code stored per tooth. The empty code
// means no condition.
type ToothStatus string

const StatusNone ToothStatus = ""

// ToothNumbers lists the permanent teeth in FDI notation, in chart order:
// upper arch right to left, then lower arch right to left.
var ToothNumbers = [32]string{
	"18", "17", "16", "15", "14", "13", "12", "11",
	"21", "22", "23", "24", "25", "26", "27", "28",
	"48", "47", "46", "45", "44", "43", "42", "41",
	"31", "32", "33", "34", "35", "36", "37", "38",
}

type StatusOption struct {
	Code  ToothStatus `json:"code"`
	Label string      `json:"label"`
}

var StatusOptions = []StatusOption{
	{StatusNone, "Nenhum"},
	{"PPR", "Prótese parcial removível"},
	{"PCU", "Prótese coronária unitária"},
	{"PT", "Prótese temporária"},
	{"A", "Ausente"},
	{"Cd", "Cálculo dental"},
	{"C", "Cariado"},
	{"Cr", "Coroa"},
	{"Ix", "Extração indicada"},
	{"F", "Fratura"},
	{"H", "Hígido"},
	{"Hs", "Hígido selado"},
	{"I", "Implante"},
	{"M", "Mancha branca ativa"},
	{"P", "Plano"},
	{"R", "Restaurado"},
	{"Rc", "Restaurado com cárie"},
	{"Rp", "Restaurado com placa"},
	{"Rg", "Retoque gengival"},
	{"S", "Selante indicado"},
}

// legacyStatuses maps the values written by the old click-to-cycle chart.
var legacyStatuses = map[ToothStatus]ToothStatus{
	"healthy": "H",
	"caries":  "C",
	"missing": "A",
}

var (
	teeth  = make(map[string]struct{}, len(ToothNumbers))
	labels = make(map[ToothStatus]string, len(StatusOptions))
)

func init() {
	for _, n := range ToothNumbers {
		teeth[n] = struct{}{}
	}
	for _, opt := range StatusOptions {
		labels[opt.Code] = opt.Label
	}
}

// IsTooth reports whether n is one of the 32 FDI tooth numbers.
func IsTooth(n string) bool {
	_, ok := teeth[n]
	return ok
}

// Normalize maps legacy codes onto the current set.
func (s ToothStatus) Normalize() ToothStatus {
	if c, ok := legacyStatuses[s]; ok {
		return c
	}
	return s
}

func (s ToothStatus) Valid() bool {
	_, ok := labels[s.Normalize()]
	return ok
}

func (s ToothStatus) Label() string {
	return labels[s.Normalize()]
}

// Odontogram maps tooth numbers to status codes. Absent teeth are StatusNone.
type Odontogram map[string]ToothStatus

// Status returns the condition of a tooth. Teeth missing from the map have no
// condition; only numbers outside the FDI domain are an error.
func (o Odontogram) Status(tooth string) (ToothStatus, error) {
	if !IsTooth(tooth) {
		return StatusNone, fmt.Errorf("%w: %q", ErrInvalidTooth, tooth)
	}
	return o[tooth].Normalize(), nil
}

// Set records the condition of one tooth, allocating the map if needed.
func (o *Odontogram) Set(tooth string, s ToothStatus) error {
	if !IsTooth(tooth) {
		return fmt.Errorf("%w: %q", ErrInvalidTooth, tooth)
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidToothState, s)
	}
	if *o == nil {
		*o = make(Odontogram)
	}
	(*o)[tooth] = s.Normalize()
	return nil
}

// ParseOdontogram validates every entry of m and returns a normalized copy.
func ParseOdontogram(m map[string]ToothStatus) (Odontogram, error) {
	out := make(Odontogram, len(m))
	for tooth, s := range m {
		if err := out.Set(tooth, s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type ToothView struct {
	Tooth   string      `json:"tooth"`
	Code    ToothStatus `json:"code"`
	Label   string      `json:"label"`
	Display string      `json:"display"`
}

// Chart expands the odontogram over the full tooth domain, in chart order.
func (o Odontogram) Chart() []ToothView {
	chart := make([]ToothView, 0, len(ToothNumbers))
	for _, n := range ToothNumbers {
		code := o[n].Normalize()
		display := n
		if code != StatusNone {
			display = fmt.Sprintf("%s (%s)", n, code)
		}
		chart = append(chart, ToothView{Tooth: n, Code: code, Label: code.Label(), Display: display})
	}
	return chart
}
