package main

import (
	"github.com/architeacher/svc-booking-messaging/internal/runtime"
)

func main() {
	runtime.New().Run()
}
