// Package xconf 提供 PubSub 连接配置的加载和解析功能，基于 koanf 实现。
//
// # 设计理念
//
// xconf 定位为最小化配置加载器：负责文件/字节数据的加载、反序列化和热重载，
// 并在其上提供连接配置（xeth.ConnectionConfig）的类型安全读取与校验。
// 不负责配置治理（默认值注入、环境变量覆盖），这些能力由调用方按需实现。
//
// 采用统一的设计模式：
//   - 工厂函数：New, NewFromBytes
//   - Client() 暴露底层 koanf 实例
//   - 增值功能：并发安全的 Reload、类型安全的 Unmarshal、Connections 校验读取
//
// # 支持的格式
//
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//
// # 连接配置
//
// 配置文件约定 connections 键下为连接数组：
//
//	connections:
//	  - name: pub-a
//	    publisher_id: 2234
//	    address:
//	      network_interface: eth0
//	      url: opc.eth://01-00-5e-00-00-01:100.3
//
// Connections 在反序列化后校验每个条目：网卡名非空、URL 可解析、
// 传输配置 URI（缺省时自动补全）匹配 Ethernet 配置。
//
// # 配置监视
//
// 支持文件变更监视和自动重载（基于 fsnotify）。
// 特性：监视目录、内置防抖、支持 vim/emacs 原子写入。
// 从 bytes 创建的 Config 不支持监视。
package xconf
