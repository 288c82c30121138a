// Package xretry 提供调用方侧的重试能力，基于 avast/retry-go/v5 实现。
//
// # 定位
//
// 传输通道的 Send 语义是 at-most-once：失败即返回，不自动重试，
// 通道状态保持不变。重试是调用方的决策，xretry 把这个决策封装成
// 可复用的执行器。
//
// 两个层次：
//   - Do / DoWithData：通用的薄包装，完整暴露 retry-go 选项
//   - Sender：针对通道 Send 的执行器，自动区分瞬时错误（发送失败，
//     可重试）与永久错误（状态非法、配置无效、能力缺失，不重试）
//
// # 错误分类
//
// 默认规则：
//   - 实现 RetryableError 接口的错误按 Retryable() 判断
//   - Unrecoverable 包装的错误立即终止
//   - 其他错误视为可重试
//
// Sender 在此之上将 xeth 的 ErrInvalidState、ErrInvalidConfiguration、
// ErrReceiveUnsupported 归类为永久错误。
package xretry
