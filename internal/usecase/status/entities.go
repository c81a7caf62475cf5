package status

type StatusInput struct {
	Category  string `json:"category" validate:"required,category"`
	Name      string `json:"status_name" validate:"required,max=50"`
	ColorCode string `json:"color_code" validate:"omitempty,hexcolor,len=7"`
	Order     int    `json:"order" validate:"gte=0"`
}
