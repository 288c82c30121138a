// Package xbuf 提供帧缓冲区池。
//
// Pool 是 [sync.Pool] 之上的轻量封装，面向链路层发送路径的
// "按帧分配、发送后立即释放"模式：
//
//	buf := pool.Get(frameLen)
//	defer pool.Put(buf)
//	// ... 填充并发送 buf ...
//
// # 特性
//
//   - Get 返回长度精确等于请求大小的切片（容量可能更大）
//   - Put 归还缓冲区供后续复用，超过容量上限的缓冲区直接丢弃
//   - 并发安全，多 goroutine 可共享同一个 Pool
//
// # 注意事项
//
//   - Get 返回的内容未清零，调用方必须完整覆盖写入
//   - Put 之后不得再访问该切片（典型的 use-after-free 场景）
//   - Put(nil) 是 no-op
//
// # 设计选择说明
//
// 设计决策: 单一容量上限而非按大小分级。链路层帧大小上限固定
// （以太网 MTU 量级），分级桶的收益撑不起额外复杂度。
// 超限缓冲区交给 GC，池只服务常规帧。
package xbuf
