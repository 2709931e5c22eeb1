// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
# 概述

包 providers 提供模型服务商适配的公共基础层。具体实现位于子包（gemini），
本包负责共享配置与错误语义映射。

# 核心类型

  - BaseProviderConfig：共享配置（APIKey、BaseURL、Model、Timeout）
  - GeminiConfig：Gemini Provider 配置

# 核心函数

  - MapHTTPError：将上游 HTTP 状态码映射为 llm.Error（含 Retryable 标记）
  - MapTransportError：将网络/超时错误映射为 llm.Error
  - ReadErrorMessage：解析 Google 风格的 JSON 错误体，失败回退原文
  - ChooseModel：按优先级选择模型（请求 > 默认 > 兜底）
*/
package providers
