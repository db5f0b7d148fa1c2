package cmd

import (
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/gommon/log"
)

type CompositionRoot struct {
	observer order.Observer
}

func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{
		observer: newLogObserver(),
	}
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(c.observer)
}

// newLogObserver routes order lifecycle events to the application logger.
func newLogObserver() order.Observer {
	return func(event order.Event) {
		switch event.Level {
		case order.LevelWarn:
			log.Warnf("order %s: %s", event.OrderID, event.Message)
		case order.LevelError:
			log.Errorf("order %s: %s", event.OrderID, event.Message)
		default:
			log.Infof("order %s: %s", event.OrderID, event.Message)
		}
	}
}
