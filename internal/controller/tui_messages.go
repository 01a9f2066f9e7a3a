package controller

import (
	m "github.com/mouse-blink/linemap/internal/model"
)

// rowItem is a list item wrapping one mapping row.
type rowItem struct {
	row m.Row
}

func (r rowItem) FilterValue() string {
	return r.row.OldString() + " " + r.row.NewString() + " " + string(r.row.Origin)
}

func (r rowItem) status() string {
	switch {
	case r.row.Inserted():
		return "inserted"
	case r.row.Deleted():
		return "deleted"
	default:
		return string(r.row.Origin)
	}
}
