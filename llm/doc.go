// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
包 llm 提供生成式模型的统一接入层：Provider 抽象、请求/响应模型与错误语义。

# 概述

上层（studio）只依赖本包的 [Provider] 接口与 [ChatRequest] / [ChatResponse]，
具体服务商实现位于 llm/providers 子包。每次调用都是一次性请求，本包不做重试。

# 核心类型

  - [Provider]：Completion / HealthCheck / Name
  - [ChatRequest]：模型、消息、JSON 输出模式与 ResponseSchema
  - [ChatResponse] / [ChatChoice] / [ChatUsage]：响应与 token 用量
  - [Error] / [ErrorCode]：带 HTTP 状态与 Retryable 标记的 Provider 错误

# 相关子包

  - llm/providers：服务商适配（gemini）与通用错误映射
  - llm/structured：JSON Schema 构建与输出校验
  - llm/tokenizer：prompt token 估算
*/
package llm
