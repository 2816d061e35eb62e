// Package main 为 fireshare 工具提供命令行接口
// fireshare 是一个把本地文件上传到云存储桶并返回公开下载链接的小工具
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// version 是应用程序版本，通常在构建时设置
var version = "v1.0.0"

// main 是应用程序的入口点
func main() {
	// 静默加载当前目录的 .env（可选的存储平台环境变量配置）
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "fireshare",
		Version: version,
		Usage:   "上传本地文件到云存储桶并获取公开下载链接",
		Description: "把一个本地文件上传到云存储桶，返回可分享的公开下载链接，\n" +
			"可选择自动复制到剪贴板。每次调用只执行一个动作。\n\n" +
			"使用示例:\n" +
			"  fireshare photo.png        上传文件并打印链接\n" +
			"  fireshare photo.png -c     上传并复制链接到剪贴板\n" +
			"  fireshare                  交互式输入文件路径\n" +
			"  fireshare --config         录入/编辑凭据配置",
		ArgsUsage: "[文件路径]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "config",
				Usage: "录入或编辑凭据配置",
			},
			&cli.BoolFlag{
				Name:    "copy",
				Aliases: []string{"c"},
				Usage:   "本次上传后把链接复制到剪贴板",
			},
		},
		Action: dispatch,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// dispatch 按参数决定本次调用执行的唯一动作
func dispatch(ctx *cli.Context) error {
	// --config: 只走配置流程，不上传
	if ctx.Bool("config") {
		return handleConfigCommand(ctx)
	}

	switch {
	case ctx.NArg() == 0:
		return handleInteractiveUpload(ctx)
	case ctx.NArg() == 1:
		return handleUploadCommand(ctx, ctx.Args().First())
	default:
		return cli.Exit("❌ 参数过多: 一次只能上传一个文件\n\n用法: fireshare [文件路径]", 1)
	}
}
