// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package studio 实现 CreatorStudio 的三个一次性生成操作。

# 操作

  - GenerateVideoIdeas: 按领域生成 5 个视频创意（viralScore 1-100）
  - GenerateScript: 按标题生成分段脚本，附剪辑视觉提示
  - OptimizeMetadata: 按视频描述生成标题、SEO 描述与标签

每个操作构建固定 prompt，携带响应 schema 以 JSON 模式调用模型一次，
校验并解码输出。失败不重试，错误统一转换为 *types.Error。

# 请求合并与缓存

相同 (operation, model, prompt) 的并发请求通过 singleflight 共享一次上游调用；
上游调用与单个调用方的 context 解绑，调用方各自遵守自己的取消与超时。
通过 WithCache 注入 ResponseCache 后，只有通过 schema 校验的非空输出会被缓存。

# 可观测性

每次上游调用创建一个 "studio.<operation>" span，并通过 MetricsRecorder
记录耗时、token 用量、并发数与 prompt token 估算。
*/
package studio
