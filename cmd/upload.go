// Package main - 上传流程
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/lukemora/fireshare/core"
	"github.com/lukemora/fireshare/storage"
	"github.com/lukemora/fireshare/utils"
)

// handleInteractiveUpload 处理无参数调用
// 打印欢迎横幅，解析配置后提示输入要上传的文件路径
func handleInteractiveUpload(ctx *cli.Context) error {
	printBanner()

	config, err := resolveDefaultConfig(false)
	if errors.Is(err, core.ErrDeclined) {
		return nil
	}
	if err != nil {
		return cli.Exit("❌ "+err.Error(), 1)
	}

	var path string
	if err := survey.AskOne(&survey.Input{
		Message: "请输入要上传的文件路径:",
	}, &path); err != nil {
		return cli.Exit("❌ 读取输入失败: "+err.Error(), 1)
	}

	path = utils.StripQuotes(path)
	if !utils.FileExists(path) {
		// 交互输入的无效路径只提示，不改变退出码
		fmt.Println("❌ 无效的文件路径: " + path)
		return nil
	}

	return doUpload(ctx, config, path)
}

// handleUploadCommand 处理带文件路径参数的调用
// 路径不存在时直接报错退出，不会发起任何网络调用
func handleUploadCommand(ctx *cli.Context, arg string) error {
	path := utils.StripQuotes(arg)
	if !utils.FileExists(path) {
		return cli.Exit("❌ 无效的文件路径: "+path, 1)
	}

	config, err := resolveDefaultConfig(false)
	if errors.Is(err, core.ErrDeclined) {
		return nil
	}
	if err != nil {
		return cli.Exit("❌ "+err.Error(), 1)
	}

	return doUpload(ctx, config, path)
}

// doUpload 执行一次上传并输出/复制结果链接
func doUpload(ctx *cli.Context, config *core.Config, path string) error {
	platform, err := storage.NewPlatform(config, core.LoadStorageConfig())
	if err != nil {
		return cli.Exit("❌ "+err.Error(), 1)
	}

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " 正在上传到" + platform.GetName() + "..."
	sp.Start()
	url, err := storage.NewUploader(platform).UploadFile(context.Background(), path)
	sp.Stop()

	if err != nil {
		// 细节进日志，用户看到统一的失败提示
		logrus.Error(err)
		return cli.Exit("❌ 上传失败", 1)
	}

	fmt.Println("✅ 上传成功")
	fmt.Println("🔗 " + url)

	if config.AutoCopy || ctx.Bool("copy") {
		if err := clipboard.WriteAll(url); err != nil {
			fmt.Println("⚠️  复制到剪贴板失败: " + err.Error())
		} else {
			fmt.Println("📋 链接已复制到剪贴板")
		}
	}
	return nil
}

// printBanner 打印欢迎横幅
func printBanner() {
	fmt.Println("🔥 fireshare " + version)
	fmt.Println("   上传文件，拿到链接，就这么简单")
	fmt.Println()
}
