package messaging

import (
	"chanv-service/internal/app/config"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "chanv-service"

// NewRabbitMQ dials the broker. Health report events are best effort, so the
// caller decides whether a failed dial is fatal.
func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   fmt.Sprintf("%s:%s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/",
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(uri.String(), amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: properties,
		Dial:       amqp091.DefaultDial(5 * time.Second),
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Successfully connected to rabbitMQ at %s", uri.Host)
	return conn, nil
}
