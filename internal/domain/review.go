package domain

type Review struct {
	ID         int64     `json:"id"`
	User       *User     `json:"user,omitempty"`
	BraceletID *int64    `json:"braceletId,omitempty"`
	CharmID    *int64    `json:"charmId,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate Timestamp `json:"reviewDate"`
}

func (r Review) ReviewerName() string {
	if r.User == nil {
		return ""
	}
	return r.User.DisplayName()
}

// ProductKind is "Bracelet" when the review targets a bracelet and "Charm" otherwise.
func (r Review) ProductKind() string {
	if r.BraceletID != nil && *r.BraceletID != 0 {
		return "Bracelet"
	}
	return "Charm"
}

func (r Review) ProductID() int64 {
	if r.BraceletID != nil && *r.BraceletID != 0 {
		return *r.BraceletID
	}
	if r.CharmID != nil {
		return *r.CharmID
	}
	return 0
}
