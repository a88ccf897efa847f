package ui

import "sync/atomic"

type Stats struct {
	PagesFetched atomic.Int64
	PagesFailed  atomic.Int64
	ItemsScraped atomic.Int64
	TotalBytes   atomic.Int64
}
