// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xbuf: 定长帧缓冲池，基于 sync.Pool，发送路径零散分配
//   - xmac: MAC 地址工具库，连字符格式解析、分类判定、序列化
//
// 设计原则：
//   - 热路径避免分配
//   - 跨平台兼容
package util
