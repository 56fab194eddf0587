// internal/record/mqtt.go
package record

import (
	"errors"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// MQTTSink publishes each record line to a broker topic. It is opt-in and
// sits alongside the file sink; the file remains the system of record.
type MQTTSink struct {
	client paho.Client
	topic  string
}

// NewMQTT connects to the broker. Connection failure at startup is fatal to
// the caller, same as any other sink setup failure.
func NewMQTT(broker, topic string) (*MQTTSink, error) {
	if broker == "" {
		return nil, errors.New("record: mqtt broker required")
	}
	if topic == "" {
		return nil, errors.New("record: mqtt topic required")
	}

	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("adccapd")

	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("record: mqtt connect %s: %w", broker, token.Error())
	}

	return &MQTTSink{client: client, topic: topic}, nil
}

// Write publishes one record line at QoS 0.
func (s *MQTTSink) Write(r Record) error {
	token := s.client.Publish(s.topic, 0, false, r.Line())
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (s *MQTTSink) Close() error {
	s.client.Disconnect(250)
	return nil
}
