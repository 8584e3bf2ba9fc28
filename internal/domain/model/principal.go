package model

// Principal is the authenticated caller of a request
type Principal struct {
	Email string
	Roles []string
}

func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
