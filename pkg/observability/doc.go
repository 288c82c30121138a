// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持动态级别与文件轮转
//
// 设计原则：
//   - 日志接口只依赖标准库类型（slog.Attr），不绑定具体后端
//   - 支持动态级别控制
package observability
