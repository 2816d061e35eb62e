// Package main - 凭据配置流程
package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/lukemora/fireshare/core"
)

// setupInstructions 首次配置时展示的操作说明
const setupInstructions = `
📝 配置步骤:
  1. 打开 Firebase 控制台: https://console.firebase.google.com
  2. 创建(或选择)一个项目，并启用 Storage
  3. 项目设置 -> 常规 -> 您的应用，注册一个Web应用
  4. 复制页面上的配置对象，形如:

     const firebaseConfig = {
       apiKey: "...",
       authDomain: "...",
       projectId: "...",
       storageBucket: "...",
       messagingSenderId: "...",
       appId: "..."
     };

  5. 在下一步整段粘贴进来即可（Ctrl+D / 回车结束输入）`

// handleConfigCommand 处理 --config
// 强制进入配置解析，随后询问自动复制偏好并落盘
func handleConfigCommand(ctx *cli.Context) error {
	path, err := core.DefaultPath()
	if err != nil {
		return cli.Exit("❌ "+err.Error(), 1)
	}

	config, err := resolveConfig(path, true)
	if errors.Is(err, core.ErrDeclined) {
		// 用户主动放弃，静默退出
		return nil
	}
	if err != nil {
		return cli.Exit("❌ "+err.Error(), 1)
	}

	fmt.Println("✅ 配置已保存: " + path)
	printConfigSummary(config)
	return nil
}

// resolveDefaultConfig 在默认路径上解析配置
func resolveDefaultConfig(forceEdit bool) (*core.Config, error) {
	path, err := core.DefaultPath()
	if err != nil {
		return nil, err
	}
	return resolveConfig(path, forceEdit)
}

// resolveConfig 解析可用配置，必要时进入交互式设置
// 配置文件缺失、无法解析或字段不全时都会触发设置流程
// forceEdit 为 true 时即使已有有效配置也询问是否重新录入
// 用户在初始确认中放弃时返回 core.ErrDeclined
func resolveConfig(path string, forceEdit bool) (*core.Config, error) {
	existing, valid := loadExisting(path)

	// 已有有效配置且未要求编辑: 原样返回，不提示、不落盘
	if valid && !forceEdit {
		return existing, nil
	}

	var config *core.Config
	var err error
	fresh := false

	if valid {
		// forceEdit 且已有有效配置: 先确认是否重新录入凭据
		edit := false
		if err := survey.AskOne(&survey.Confirm{
			Message: "已存在有效配置，重新录入凭据吗？",
		}, &edit); err != nil {
			return nil, errors.Wrap(err, "读取输入失败")
		}

		if edit {
			fmt.Println(setupInstructions)
			if config, err = promptNewConfig(); err != nil {
				return nil, err
			}
			fresh = true
		} else {
			copied := *existing
			config = &copied
		}
	} else {
		// 没有可用配置: 先展示说明并确认，拒绝则静默退出
		fmt.Println(setupInstructions)

		proceed := true
		if err := survey.AskOne(&survey.Confirm{
			Message: "现在开始配置吗？",
			Default: true,
		}, &proceed); err != nil {
			return nil, errors.Wrap(err, "读取输入失败")
		}
		if !proceed {
			return nil, core.ErrDeclined
		}

		if config, err = promptNewConfig(); err != nil {
			return nil, err
		}
		fresh = true
	}

	// 自动复制偏好: --config 下显式询问，新录入默认关闭
	if forceEdit {
		autoCopy := config.AutoCopy
		if err := survey.AskOne(&survey.Confirm{
			Message: "上传后自动把链接复制到剪贴板吗？",
			Default: config.AutoCopy,
		}, &autoCopy); err != nil {
			return nil, errors.Wrap(err, "读取输入失败")
		}
		config.AutoCopy = autoCopy
	} else if fresh {
		config.AutoCopy = false
	}

	if err := core.Save(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// loadExisting 读取已持久化的配置并判断是否完整可用
// 文件缺失、JSON损坏或任一必需字段为空都视为不可用，
// 此时配置流程直接进入初始设置，不再询问是否编辑已有配置
func loadExisting(path string) (*core.Config, bool) {
	existing, err := core.Load(path)
	if err != nil {
		return nil, false
	}
	return existing, existing.Validate() == nil
}

// promptNewConfig 读取粘贴的配置对象并解析校验
func promptNewConfig() (*core.Config, error) {
	var pasted string
	if err := survey.AskOne(&survey.Multiline{
		Message: "请粘贴配置对象:",
	}, &pasted); err != nil {
		return nil, errors.Wrap(err, "读取输入失败")
	}

	config, err := core.ParseLiteral(pasted)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// printConfigSummary 用表格打印已保存的配置，密钥类字段打码
func printConfigSummary(config *core.Config) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"配置项", "值"})
	table.Append([]string{"apiKey", maskSecret(config.APIKey)})
	table.Append([]string{"authDomain", config.AuthDomain})
	table.Append([]string{"projectId", config.ProjectID})
	table.Append([]string{"storageBucket", config.StorageBucket})
	table.Append([]string{"messagingSenderId", config.MessagingSenderID})
	table.Append([]string{"appId", maskSecret(config.AppID)})
	table.Append([]string{"autoCopy", fmt.Sprintf("%v", config.AutoCopy)})
	table.Render()
}

// maskSecret 只保留首尾各4个字符
func maskSecret(value string) string {
	if len(value) <= 8 {
		return value
	}
	return value[:4] + "..." + value[len(value)-4:]
}
