package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xpubsub/pkg/config/xconf"
	"github.com/omeyang/xpubsub/pkg/observability/xlog"
	"github.com/omeyang/xpubsub/pkg/resilience/xretry"
	"github.com/omeyang/xpubsub/pkg/transport/xeth"
	"github.com/omeyang/xpubsub/pkg/transport/xsock"
	"github.com/omeyang/xpubsub/pkg/util/xmac"
)

// usageError 表示参数错误，run() 将其映射为退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createValidateCommand(),
		createInspectCommand(),
		createSendCommand(),
	}
}

// loadConfig 按 --config 加载配置文件。
func loadConfig(cmd *cli.Command) (xconf.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return nil, &usageError{err: fmt.Errorf("缺少 --config 参数")}
	}
	return xconf.New(path)
}

// createValidateCommand 创建 validate 命令。
func createValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "加载并校验配置中的全部连接",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			conns, err := xconf.Connections(cfg)
			if err != nil {
				return err
			}

			for _, c := range conns {
				target, vid, prio, _ := xeth.ParseEndpointURL(c.Address.URL)
				addr, _ := xmac.Parse(target)
				fmt.Printf("%-16s interface=%s target=%s multicast=%t vlan=%d prio=%d\n",
					c.Name, c.Address.NetworkInterface, addr, addr.IsMulticast(), vid, prio)
			}
			return nil
		},
	}
}

// createInspectCommand 创建 inspect 命令。
func createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "解析端点 URL，打印目标地址分类与 VLAN 参数",
		ArgsUsage: "<url>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{err: fmt.Errorf("需要一个 URL 参数")}
			}

			target, vid, prio, err := xeth.ParseEndpointURL(cmd.Args().First())
			if err != nil {
				return err
			}
			addr, err := xmac.Parse(target)
			if err != nil {
				return err
			}

			fmt.Printf("target:    %s\n", addr)
			fmt.Printf("multicast: %t\n", addr.IsMulticast())
			fmt.Printf("broadcast: %t\n", addr.IsBroadcast())
			if vid != 0 {
				fmt.Printf("vlan:      %d\n", vid)
				fmt.Printf("priority:  %d\n", prio)
			} else {
				fmt.Println("vlan:      untagged")
			}
			return nil
		},
	}
}

// createSendCommand 创建 send 命令。
func createSendCommand() *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "打开连接并发送载荷（需要 CAP_NET_RAW）",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "connection",
				Aliases: []string{"n"},
				Usage:   "配置中的连接名",
			},
			&cli.StringFlag{
				Name:  "payload",
				Usage: "十六进制编码的载荷",
			},
			&cli.StringFlag{
				Name:  "text",
				Usage: "文本载荷（与 --payload 二选一）",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "发送帧数",
				Value: 1,
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "多帧发送间隔",
				Value: time.Second,
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "每帧最大尝试次数（含首次）",
				Value: 3,
			},
			&cli.BoolFlag{
				Name:  "register",
				Usage: "发送前注册接收（多播目标加入多播组）",
			},
		},
		Action: cmdSend,
	}
}

func cmdSend(ctx context.Context, cmd *cli.Command) error {
	cleanup, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	payload, err := resolvePayload(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := cmd.String("connection")
	if name == "" {
		return &usageError{err: fmt.Errorf("缺少 --connection 参数")}
	}
	conn, err := xconf.Connection(cfg, name)
	if err != nil {
		return err
	}

	sock, err := xsock.New()
	if err != nil {
		return err
	}

	ch, err := xeth.Open(sock, conn)
	if err != nil {
		// Open 失败时通道未接管 socket，需要单独释放
		_ = sock.Close()
		return err
	}
	defer func() { _ = ch.Close() }()

	if cmd.Bool("register") {
		if err := ch.Register(); err != nil {
			return err
		}
		defer func() { _ = ch.Unregister() }()
	}

	retries := cmd.Int("retries")
	if retries < 1 {
		return &usageError{err: fmt.Errorf("--retries 必须 >= 1")}
	}
	sender, err := xretry.NewSender(ch,
		xretry.WithAttempts(uint(retries)),
	)
	if err != nil {
		return err
	}

	count := cmd.Int("count")
	interval := cmd.Duration("interval")
	logger := xlog.Default()

	for i := 0; i < count; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}

		if err := sender.Send(ctx, payload); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
		logger.Info(ctx, "frame sent",
			slog.Int("frame", i+1),
			slog.Int("bytes", len(payload)),
			xlog.Address(ch.Target()),
		)
	}
	return nil
}

// resolvePayload 从 --payload（hex）或 --text 取得载荷。
func resolvePayload(cmd *cli.Command) ([]byte, error) {
	hexPayload := cmd.String("payload")
	text := cmd.String("text")

	switch {
	case hexPayload != "" && text != "":
		return nil, &usageError{err: fmt.Errorf("--payload 与 --text 互斥")}
	case hexPayload != "":
		data, err := hex.DecodeString(hexPayload)
		if err != nil {
			return nil, &usageError{err: fmt.Errorf("载荷不是合法的十六进制: %w", err)}
		}
		return data, nil
	case text != "":
		return []byte(text), nil
	default:
		return nil, &usageError{err: fmt.Errorf("需要 --payload 或 --text")}
	}
}
