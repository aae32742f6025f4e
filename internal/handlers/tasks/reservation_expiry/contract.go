//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reservation_expiry_test
package reservation_expiry

import "context"

type Service interface {
	ExpireReservations(ctx context.Context) (int64, error)
}
