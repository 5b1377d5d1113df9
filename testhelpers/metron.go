package testhelpers

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/cloudfoundry/dropsonde/dropsonde_unmarshaller"
	"github.com/cloudfoundry/sonde-go/events"
)

// FakeMetron collects the value metrics sent to a UDP port.
type FakeMetron struct {
	port         uint16
	connection   net.PacketConn
	unmarshaller *dropsonde_unmarshaller.DropsondeUnmarshaller
	valueMetrics map[string][]events.ValueMetric
	stopped      bool
	mtx          sync.RWMutex
}

func NewFakeMetron(port uint16) *FakeMetron {
	return &FakeMetron{
		port:         port,
		unmarshaller: dropsonde_unmarshaller.NewDropsondeUnmarshaller(nil),
		valueMetrics: make(map[string][]events.ValueMetric),
	}
}

func (m *FakeMetron) Listen() error {
	connection, err := net.ListenPacket("udp4", fmt.Sprintf("localhost:%d", m.port))
	if err != nil {
		return err
	}
	m.connection = connection

	return nil
}

func (m *FakeMetron) Run() error {
	// max theoretical UDP datagram
	buffer := make([]byte, 65535)
	for {
		n, _, err := m.connection.ReadFrom(buffer)
		if err != nil {
			if m.isStopped() {
				return nil
			}
			return err
		}

		envelope, err := m.unmarshaller.UnmarshallMessage(append([]byte(nil), buffer[:n]...))
		if err != nil {
			return err
		}

		if envelope.GetEventType() != events.Envelope_ValueMetric {
			continue
		}

		metric := envelope.GetValueMetric()
		m.mtx.Lock()
		m.valueMetrics[metric.GetName()] = append(m.valueMetrics[metric.GetName()], *metric)
		m.mtx.Unlock()
	}
}

func (m *FakeMetron) isStopped() bool {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.stopped
}

func (m *FakeMetron) Stop() error {
	m.mtx.Lock()
	m.stopped = true
	m.mtx.Unlock()

	return m.connection.Close()
}

func (m *FakeMetron) ValueMetricsFor(name string) []events.ValueMetric {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	return append([]events.ValueMetric{}, m.valueMetrics[name]...)
}

// DurationsFor returns the nanosecond metrics received for name.
func (m *FakeMetron) DurationsFor(name string) []time.Duration {
	durations := []time.Duration{}
	for _, metric := range m.ValueMetricsFor(name) {
		if metric.GetUnit() == "nanos" {
			durations = append(durations, time.Duration(metric.GetValue()))
		}
	}

	return durations
}
