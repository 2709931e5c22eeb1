// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package types 提供 CreatorStudio 的全局共享类型定义。

# 概述

types 是最底层的公共包，不依赖任何内部包，为 studio、dashboard、api、web
等上层模块提供统一的类型契约。

# 核心类型

  - VideoIdea / ScriptSection / GeneratedMetadata：模型结构化输出
  - AnalyticsData   ：频道数据点（仪表盘 mock 数据）
  - AppView / NavItem：视图枚举与侧边栏导航
  - Error / ErrorCode：结构化错误体系，含 HTTP 状态码、Retryable、Provider 标记

# 主要能力

  - Context 传播：WithRequestID / WithUserID / WithChannelID / WithRoles
  - 错误工具链：AsError / IsErrorCode / IsRetryable / GetErrorCode
  - 视图解析：ParseView / ViewForPath（未知值回落到 Dashboard）
*/
package types
