package entity

import (
	"strconv"
	"strings"
)

// Advice is a gardening tip applicable to one or more months. Month holds the comma joined month numbers.
type Advice struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Month  string `json:"-" gorm:"size:50;not null"`
	Advice string `json:"advice" gorm:"type:text;not null"`
}

func (Advice) TableName() string {
	return "advices"
}

// Months splits the stored month list. Elements that are not numbers are skipped.
func (a *Advice) Months() []int {
	if a.Month == "" {
		return []int{}
	}

	parts := strings.Split(a.Month, ",")
	months := make([]int, 0, len(parts))
	for _, part := range parts {
		month, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		months = append(months, month)
	}
	return months
}

// SetMonths stores months in the given order
func (a *Advice) SetMonths(months []int) {
	parts := make([]string, len(months))
	for i, month := range months {
		parts[i] = strconv.Itoa(month)
	}
	a.Month = strings.Join(parts, ",")
}
