package partner

// District is a lookup table for customer delivery districts.
type District struct {
	ID   int64  `gorm:"column:id_district;primaryKey;autoIncrement" json:"id_district"`
	Name string `gorm:"column:district;type:varchar(50)" json:"district"`
}

func (District) TableName() string {
	return "district"
}

func (District) PrimaryKeyColumn() string {
	return "id_district"
}

// CustomerType is a lookup table distinguishing retail from organization customers.
type CustomerType struct {
	ID   int64  `gorm:"column:id_customer_type;primaryKey;autoIncrement" json:"id_customer_type"`
	Name string `gorm:"column:customer_type;type:varchar(50)" json:"customer_type"`
}

func (CustomerType) TableName() string {
	return "customer_type"
}

func (CustomerType) PrimaryKeyColumn() string {
	return "id_customer_type"
}

// ContactType is a lookup table for customer contact channels (phone, email, ...).
type ContactType struct {
	ID   int64  `gorm:"column:id_cont_type;primaryKey;autoIncrement" json:"id_cont_type"`
	Name string `gorm:"column:cont_type;type:varchar(50)" json:"cont_type"`
}

func (ContactType) TableName() string {
	return "cont_type"
}

func (ContactType) PrimaryKeyColumn() string {
	return "id_cont_type"
}
