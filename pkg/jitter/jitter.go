// Package jitter добавляет случайность в интервалы повтора,
// чтобы разнесённые по времени повторы не совпадали.
package jitter

import (
	"math/rand"
	"time"
)

// DefaultFactor — стандартный коэффициент джиттера (50%)
const DefaultFactor = 0.5

// Duration возвращает длительность из диапазона [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	return d + time.Duration(rand.Float64()*factor*float64(d))
}

// Backoff вычисляет экспоненциальную задержку с джиттером для попытки attempt
// (нумерация с нуля), ограниченную сверху значением max.
func Backoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, factor)
}
