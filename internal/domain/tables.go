package domain

var Tables = []interface{}{
	&User{},
	&Product{},
	&Payment{},
}
