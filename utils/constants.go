package utils

// Palette shared by the renderers.
var (
	BackgroundColor  = [3]int{0x41, 0x2C, 0x84}
	PaddleColor      = [3]int{0x04, 0x34, 0x6C}
	BallColor        = [3]int{0xA6, 0x00, 0x00}
	CenterLineColor  = [3]int{0x21, 0x85, 0x55}
	ScoreColor       = [3]int{0x92, 0x00, 0x31}
	GoodPowerUpColor = [3]int{0xFF, 0x00, 0x00}
	BadPowerUpColor  = [3]int{0x00, 0xFF, 0x09}
	BannerColor      = [3]int{0x42, 0xFF, 0x49}
	EndTextColor     = [3]int{0xFF, 0xFC, 0x00}
	FPSColor         = [3]int{0x65, 0x9A, 0x00}
	GlowColor        = [3]int{121, 209, 111}
)

const (
	PowerUpBanner = "POWER UP IS ACTIVE"
	RestartHint   = "PRESS R TO RESTART"
	WinText       = "YOU WIN"
	LoseText      = "YOU LOSE"
)
