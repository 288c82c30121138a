// xethpub 是以太网 PubSub 发布端的命令行工具。
//
// 用法:
//
//	xethpub [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     配置文件路径 (yaml/json)
//	-l, --log-level  日志级别 (debug/info/warn/error, 默认: info)
//
// 命令:
//
//	validate         加载并校验配置中的全部连接
//	inspect <url>    解析端点 URL，打印目标地址分类与 VLAN 参数
//	send             打开连接并发送载荷（需要 CAP_NET_RAW）
//	help             显示帮助信息
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（配置加载、通道打开、发送失败等）
//	2: 参数错误
//
// 示例:
//
//	xethpub -c pubsub.yaml validate
//	xethpub inspect opc.eth://01-00-5e-00-00-01:100.3
//	xethpub -c pubsub.yaml send --connection pub-a --payload 68656c6c6f
//	xethpub -c pubsub.yaml send --connection pub-a --text hello --count 10 --interval 100ms
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xpubsub/pkg/observability/xlog"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xethpub",
		Usage:   "以太网 PubSub 发布端命令行工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (yaml/json)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "日志级别 (debug/info/warn/error)",
				Value:   "info",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// buildLogger 根据 --log-level 构建日志器并设为包级默认。
// 返回的 cleanup 在进程退出前调用。
func buildLogger(cmd *cli.Command) (func(), error) {
	level, err := xlog.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return nil, &usageError{err: err}
	}

	logger, cleanup, err := xlog.New().
		SetLevel(level).
		SetOutput(os.Stderr).
		Build()
	if err != nil {
		return nil, err
	}

	xlog.SetDefault(logger)
	return cleanup, nil
}
