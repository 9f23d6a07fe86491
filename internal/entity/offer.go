package entity

import "strings"

// Offer describes the product being sold for one scoring run.
type Offer struct {
	Name          string   `json:"name"`
	ValueProps    []string `json:"value_props"`
	IdealUseCases []string `json:"ideal_use_cases"`
}

// NewOffer copies the given slices so later caller mutations do not leak in.
func NewOffer(name string, valueProps, idealUseCases []string) Offer {
	return Offer{
		Name:          name,
		ValueProps:    append([]string{}, valueProps...),
		IdealUseCases: append([]string{}, idealUseCases...),
	}
}

// ICP returns the ideal customer profile: the first ideal use case.
// ok is false when there are no use cases or the first one is blank.
func (o Offer) ICP() (icp string, ok bool) {
	if len(o.IdealUseCases) == 0 {
		return "", false
	}
	icp = strings.TrimSpace(o.IdealUseCases[0])
	return icp, icp != ""
}
