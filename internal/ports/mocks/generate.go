//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../user_repository.go  -destination=./mock_user_repository.go  -package=mocks
//go:generate mockgen -source=../user_cache.go       -destination=./mock_user_cache.go       -package=mocks
//go:generate mockgen -source=../user_client.go      -destination=./mock_user_client.go      -package=mocks
//go:generate mockgen -source=../event_publisher.go  -destination=./mock_event_publisher.go  -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../order_service.go    -destination=./mock_order_service.go    -package=mocks
//go:generate mockgen -source=../user_service.go     -destination=./mock_user_service.go     -package=mocks

package mocks
