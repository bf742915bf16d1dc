//go:generate go run -mod=mod github.com/golang/mock/mockgen -package mocks -destination=./mock_net_utils.go -source=../pkg/utils/netutils/net_utils.go -build_flags=-mod=mod
package mocks

import _ "github.com/golang/mock/mockgen/model"
