package usecase

import "context"

// EventsInfra публикует события изменения каталога во внешнюю шину.
type EventsInfra interface {
	WriteProductEvent(ctx context.Context, req *ProductEventReq) error
}
