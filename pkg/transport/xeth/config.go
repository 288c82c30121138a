package xeth

// NetworkAddress 结构化网络地址，对应 OPC UA 的 NetworkAddressUrlDataType。
type NetworkAddress struct {
	// NetworkInterface 本地网络接口名（如 "eth0"）。
	// 帧从该接口发出，源 MAC 取该接口的硬件地址。
	NetworkInterface string `json:"networkInterface" koanf:"network_interface"`

	// URL 连接 URL，形如 opc.eth://01-0b-19-00-00-00:100.3。
	URL string `json:"url" koanf:"url"`
}

// ConnectionConfig 连接配置。
// Open 之后配置不可变，通道只读取不修改。
type ConnectionConfig struct {
	// Name 连接名称，仅用于日志。
	Name string `json:"name" koanf:"name"`

	// Address 结构化网络地址。
	Address NetworkAddress `json:"address" koanf:"address"`

	// PublisherID 发布方标识，通道透传不解释。
	PublisherID uint64 `json:"publisherId" koanf:"publisher_id"`

	// TransportProfileURI 传输配置标识，通道透传不解释。
	TransportProfileURI string `json:"transportProfileUri" koanf:"transport_profile_uri"`
}
