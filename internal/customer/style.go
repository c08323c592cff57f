package customer

// Style is the badge presentation of an enum value. Background and Foreground
// are class tokens consumed by the dashboard.
type Style struct {
	Value      string `json:"value"`
	Label      string `json:"label"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Unknown    bool   `json:"unknown,omitempty"`
}

const unknownLabel = "未知"

var neutral = Style{Label: unknownLabel, Background: "bg-gray-100", Foreground: "text-gray-700"}

var creditStyles = map[CreditLevel]Style{
	CreditA: {Label: "优秀", Background: "bg-green-100", Foreground: "text-green-700"},
	CreditB: {Label: "良好", Background: "bg-blue-100", Foreground: "text-blue-700"},
	CreditC: {Label: "一般", Background: "bg-yellow-100", Foreground: "text-yellow-700"},
	CreditD: {Label: "较差", Background: "bg-red-100", Foreground: "text-red-700"},
}

var cooperationStyles = map[CooperationStatus]Style{
	CooperationActive:    {Label: "合作中", Background: "bg-green-100", Foreground: "text-green-700"},
	CooperationInactive:  {Label: "未合作", Background: "bg-gray-100", Foreground: "text-gray-700"},
	CooperationSuspended: {Label: "已暂停", Background: "bg-red-100", Foreground: "text-red-700"},
}

// CreditStyle returns the badge for a credit level. Unknown values get the
// neutral "未知" badge with Unknown set.
func CreditStyle(raw string) Style {
	return lookup(creditStyles, CreditLevel(raw), raw)
}

// CooperationStyle returns the badge for a cooperation status.
func CooperationStyle(raw string) Style {
	return lookup(cooperationStyles, CooperationStatus(raw), raw)
}

func lookup[K comparable](table map[K]Style, key K, raw string) Style {
	s, ok := table[key]
	if !ok {
		s = neutral
		s.Unknown = true
	}
	s.Value = raw
	return s
}
