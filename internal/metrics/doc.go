// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
包 metrics 提供基于 Prometheus 的指标采集能力，覆盖
HTTP、内容生成与缓存三个维度。

# 概述

本包通过 Collector 统一注册和记录 Prometheus 指标，使用 promauto
自动注册机制。所有指标按 namespace 隔离，测试可通过
NewCollectorWithRegisterer 使用独立 Registry。

# 主要能力

  - HTTP 指标：请求总数、耗时、请求/响应体大小，
    按 method/path/status 分组，状态码归类为 2xx/3xx/4xx/5xx。
  - 生成指标：调用总数、耗时、token 用量（prompt/completion）、
    进行中的上游调用数、singleflight 合并数、本地 prompt token 估算。
  - 缓存指标：命中与未命中计数，按 cache_type 分组。
*/
package metrics
