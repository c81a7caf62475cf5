package status

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("status not found")
	// ErrInUse is returned when deleting a status still referenced by a job or a ledger row.
	ErrInUse = errors.New("status is referenced and cannot be deleted")
)

type Category string

const (
	CategoryApproval  Category = "APPROVAL"
	CategoryParts     Category = "PARTS"
	CategoryRepair    Category = "REPAIR"
	CategoryPickup    Category = "PICKUP"
	CategoryBilling   Category = "BILLING"
	CategoryDismantle Category = "DISMANTLE"
)

// Categories in workflow order.
var Categories = []Category{
	CategoryApproval,
	CategoryParts,
	CategoryRepair,
	CategoryPickup,
	CategoryBilling,
	CategoryDismantle,
}

var categoryLabels = map[Category]string{
	CategoryApproval:  "LOA & Insurance",
	CategoryParts:     "Parts Procurement",
	CategoryRepair:    "Repair Shop Stage",
	CategoryPickup:    "Releasing Stage",
	CategoryBilling:   "Insurance Claims",
	CategoryDismantle: "Total Wreck",
}

// Order is the fixed position of the category in the workflow, 0 when unknown.
func (c Category) Order() int {
	for i, k := range Categories {
		if k == c {
			return i + 1
		}
	}
	return 0
}

func (c Category) Label() string { return categoryLabels[c] }

func (c Category) Valid() bool { return c.Order() > 0 }

func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.Valid()
}

const DefaultColor = "#3498db"

type Status struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Category  Category  `gorm:"column:category;type:enum('APPROVAL','PARTS','REPAIR','PICKUP','BILLING','DISMANTLE');not null" json:"category"`
	Name      string    `gorm:"column:status_name;size:50;not null" json:"status_name"`
	ColorCode string    `gorm:"column:color_code;size:7;not null;default:'#3498db'" json:"color_code"`
	Order     int       `gorm:"column:order;not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Status) TableName() string { return "statuses" }

func (s *Status) String() string {
	if s == nil {
		return "<none>"
	}
	return "[" + s.Category.Label() + "] " + s.Name
}
