// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
包 cache 提供基于 Redis 的缓存管理能力，支持连接池、健康检查与 JSON 序列化。

# 概述

本包封装 go-redis 客户端，为生成结果缓存提供统一的读写接口。
Manager 负责连接生命周期管理，包括初始化、健康检查与优雅关闭。

# 核心类型

  - Manager：缓存管理器，提供 Get/Set/Delete/Ping 与 GetJSON/SetJSON。
  - Config：地址、密码、键前缀、默认 TTL、连接池与健康检查间隔。

# 主要能力

  - 键前缀：所有键自动加上 KeyPrefix，避免与同库其他应用冲突。
  - 健康检查：后台定时 Ping，Close 后退出。
  - 错误语义：ErrCacheMiss / ErrClosed 哨兵错误与 IsCacheMiss 判断函数。
*/
package cache
