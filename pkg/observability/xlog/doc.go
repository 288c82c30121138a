// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转）
//   - 动态级别调整（运行时热更新）
//   - 全局 Logger 便利函数
//   - 传输层常用便捷属性（Err、Component、Operation 等）
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过）。
// Builder 为一次性使用：调用 [Builder.Build] 后不可复用，需通过 [New] 创建新实例。
//
//	logger, cleanup, err := xlog.New().
//	    SetLevel(xlog.LevelDebug).
//	    SetFormat("json").
//	    SetRotation("/var/log/pubsub.log").
//	    Build()
//	defer cleanup()
//
// # 全局 Logger
//
// 适用于脚手架、小工具等简单场景，库代码推荐依赖注入。
//
//   - [Default]: 获取全局 Logger（惰性初始化：stderr、Info 级别、text 格式）
//   - [SetDefault]: 替换全局 Logger（nil 会被忽略）
//   - [Debug]、[Info]、[Warn]、[Error]: 全局便利函数，签名为 (ctx, msg, ...slog.Attr)
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 支持配置文件直接序列化/反序列化。
package xlog
