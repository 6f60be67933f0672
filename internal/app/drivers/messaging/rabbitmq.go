package messaging

import (
	"fmt"
	"log"
	"practice-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ returns nil when no host is configured so billing events are
// dropped instead of blocking startup.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if driverConfig.RabbitMQ.Host == "" {
		log.Println("RabbitMQ host not configured, billing events disabled")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
