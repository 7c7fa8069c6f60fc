package config

import (
	"github.com/kelseyhightower/envconfig"

	pkgtls "github.com/cloud-wave-best-zizon/storefront-service/pkg/tls"
)

type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	AWSRegion string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// DynamoDB
	LocalMode             bool   `envconfig:"LOCAL_MODE" default:"true"` // run without AWS
	DynamoEndpoint        string `envconfig:"DYNAMO_ENDPOINT" default:"http://localhost:8000"`
	UsersTableName        string `envconfig:"USERS_TABLE_NAME" default:"users-table"`
	ProductsTableName     string `envconfig:"PRODUCTS_TABLE_NAME" default:"products-table"`
	CartTableName         string `envconfig:"CART_TABLE_NAME" default:"cart-lines-table"`
	OrdersTableName       string `envconfig:"ORDERS_TABLE_NAME" default:"orders-table"`
	AddressesTableName    string `envconfig:"ADDRESSES_TABLE_NAME" default:"addresses-table"`
	ReviewsTableName      string `envconfig:"REVIEWS_TABLE_NAME" default:"reviews-table"`
	LikesTableName        string `envconfig:"LIKES_TABLE_NAME" default:"likes-table"`
	AppointmentsTableName string `envconfig:"APPOINTMENTS_TABLE_NAME" default:"appointments-table"`

	// Notifications
	KafkaBrokers      string   `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	NotificationTopic string   `envconfig:"NOTIFICATION_TOPIC" default:"notification-events"`
	AdminEmails       []string `envconfig:"ADMIN_EMAILS" default:"admin@larena.in"`
	MailQueueSize     int      `envconfig:"MAIL_QUEUE_SIZE" default:"256"`

	// Appointments use store-local calendar days.
	StoreTimezone string `envconfig:"STORE_TIMEZONE" default:"Asia/Kolkata"`

	TLS pkgtls.TLSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
