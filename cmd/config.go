package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	OriginZip       string
	ZipDataPath     string
	StripeSecretKey string
	UPSClientID     string
	UPSClientSecret string
	UPSShipperNum   string
}
