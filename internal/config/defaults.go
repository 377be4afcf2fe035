package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultDBPath = "tasks.db"

	DefaultCheckInterval = time.Minute

	// DefaultMaintenanceSchedule runs SQLite VACUUM nightly at 04:10.
	DefaultMaintenanceSchedule = "10 4 * * *"
)

// Default user-facing bot messages.
const (
	DefaultWelcomeMessage = "🤖 Бот-планировщик служебных задач\n\nИспользуйте кнопки ниже:"

	DefaultAdminPanelMessage = `👨‍💻 АДМИН ПАНЕЛЬ

Команды:
/add_daily время - задача - Добавить ежедневную
/delete_daily id - Удалить ежедневную
/time ЧЧ:ММ - Изменить время отправки
/view_all - Показать все задачи
/test - Тест отправки`

	DefaultUnauthorizedMessage = "⛔ Доступ запрещен"
	DefaultGeneralErrorMessage = "❌ Произошла ошибка. Попробуйте позже."
)

// setDefaults registers default values on the given viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", DefaultLogJSON)

	v.SetDefault("database.path", DefaultDBPath)

	v.SetDefault("scheduler.check_interval", DefaultCheckInterval)
	v.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.sql_maintenance.schedule", DefaultMaintenanceSchedule)

	v.SetDefault("messages.welcome", DefaultWelcomeMessage)
	v.SetDefault("messages.admin_panel", DefaultAdminPanelMessage)
	v.SetDefault("messages.error_unauthorized", DefaultUnauthorizedMessage)
	v.SetDefault("messages.error_general", DefaultGeneralErrorMessage)
}
