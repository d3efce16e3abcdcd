//go:generate mockgen -destination mocks.go -package libdnsadapter . Client
package libdnsadapter

import (
	"nathanbeddoewebdev/registrar/internal/registrar/domain"
)

// Client is the registrar surface the adapter drives. Both registrar
// providers satisfy it.
type Client interface {
	domain.DomainLister
	domain.RecordManager
}
