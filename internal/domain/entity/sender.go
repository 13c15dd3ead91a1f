package entity

// Sender identidad fija del emisor del rēķins. No es configurable:
// el servicio factura siempre en nombre del mismo negocio.
type Sender struct {
	Name        string
	Tagline     string
	Address     string
	Phone       string
	Email       string
	Website     string
	RegNumber   string
	VATNumber   string
	BankAccount string
	BankName    string
}

// DefaultSender devuelve los datos del emisor tal como aparecen
// impresos en el documento.
func DefaultSender() Sender {
	return Sender{
		Name:        "MrBiskvits",
		Tagline:     "Profesionāli pakalpojumi",
		Address:     "Rīga, Latvija",
		Phone:       "+371 12345678",
		Email:       "info@mrbiskvits.lv",
		Website:     "www.mrbiskvits.lv",
		RegNumber:   "123456789",
		VATNumber:   "LV123456789",
		BankAccount: "LV42HABA123456789",
		BankName:    "SEB Banka",
	}
}
