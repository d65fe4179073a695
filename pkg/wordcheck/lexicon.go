package wordcheck

// Built-in lexicons cover the vocabulary that commonly appears in business
// module identifiers and messages. They are intentionally small; projects
// with richer vocabularies extend them through rule options.

//nolint:gochecknoglobals // Read-only word list.
var englishLexicon = []string{
	"a", "about", "access", "account", "action", "add", "address", "after",
	"all", "allow", "amount", "an", "and", "any", "apply", "archive", "are",
	"array", "as", "at", "attribute", "available", "balance", "bank", "base",
	"batch", "be", "before", "begin", "binary", "block", "body", "buffer",
	"build", "business", "by", "cache", "calculate", "calculation", "call",
	"cancel", "catalog", "change", "check", "clear", "client", "close",
	"code", "column", "command", "comment", "common", "company", "compare",
	"complete", "condition", "configuration", "confirm", "connect",
	"connection", "constant", "contact", "content", "context", "continue",
	"contract", "control", "convert", "copy", "count", "create", "currency",
	"current", "customer", "data", "database", "date", "day", "default",
	"delete", "description", "detail", "dialog", "directory", "disable",
	"document", "down", "driver", "each", "edit", "element", "empty",
	"enable", "end", "error", "event", "exchange", "execute", "exists",
	"export", "expression", "external", "field", "file", "fill", "filter",
	"find", "finish", "first", "flag", "folder", "for", "form", "format",
	"from", "full", "function", "get", "group", "handler", "has", "header",
	"help", "hide", "hour", "id", "identifier", "if", "import", "in",
	"index", "info", "information", "init", "initialize", "input", "insert",
	"install", "internal", "into", "invoice", "is", "item", "journal",
	"key", "kind", "language", "last", "left", "length", "level", "line",
	"link", "list", "load", "local", "lock", "log", "login", "main",
	"manager", "map", "mark", "max", "message", "method", "min", "minute",
	"mode", "modified", "module", "month", "move", "name", "new", "next",
	"no", "node", "not", "number", "object", "of", "off", "old", "on",
	"open", "operation", "option", "or", "order", "organization", "out",
	"output", "page", "parameter", "parent", "parse", "part", "password",
	"path", "payment", "period", "picture", "post", "prefix", "prepare",
	"presentation", "previous", "price", "print", "procedure", "process",
	"processing", "processor", "product", "property", "query", "quantity",
	"rate", "read", "record", "ref", "reference", "refresh", "register",
	"remove", "replace", "report", "request", "reset", "resource",
	"response", "result", "return", "right", "role", "row", "run", "save",
	"schedule", "scheduled", "search", "second", "section", "select",
	"selection", "send", "server", "service", "session", "set", "settings",
	"show", "size", "sort", "source", "start", "state", "status", "stop",
	"storage", "store", "string", "structure", "sum", "support", "system",
	"tab", "table", "tabular", "task", "template", "temporary", "test",
	"text", "the", "this", "time", "title", "to", "token", "total",
	"transfer", "type", "unit", "unload", "up", "update", "upload", "use",
	"user", "util", "value", "variant", "version", "view", "warehouse",
	"warning", "web", "week", "window", "with", "word", "work", "write",
	"year",
}

//nolint:gochecknoglobals // Read-only word list.
var russianLexicon = []string{
	"адрес", "архив", "база", "банк", "блок", "валюта", "вид", "внешний",
	"возврат", "вопрос", "восстановить", "время", "выбор", "выборка",
	"выгрузить", "выгрузка", "выполнить", "выражение", "группа", "данные",
	"дата", "день", "добавить", "документ", "доступ",
	"журнал", "задача", "задание", "закрыть", "запись", "заполнить",
	"запрос", "значение", "идентификатор", "изменить", "импорт", "имя",
	"индекс", "история", "источник", "итог", "картинка", "каталог",
	"клиент", "ключ", "код", "колонка", "команда", "комментарий",
	"константа", "контекст", "контрагент", "копировать", "массив",
	"менеджер", "метод", "модуль", "момент", "найти", "наименование",
	"настройки", "начало", "новый", "номер", "обработать", "обработка",
	"обработчик", "общий", "объект", "обновить", "окно", "операция",
	"описание", "организация", "ответ", "открыть", "отчет", "очистить",
	"ошибка", "параметр", "пароль", "первый", "передать", "период",
	"печать", "план", "поиск", "поле", "получить", "пользователь",
	"порядок", "последний", "построить", "права", "представление",
	"префикс", "признак", "проверить", "проверка", "продукт", "проект",
	"процедура", "путь", "работа", "раздел", "размер", "расчет", "регистр",
	"редактировать", "результат", "реквизит", "роль", "сеанс", "сервер",
	"сервис", "система", "скопировать", "следующий", "словарь", "создать",
	"сообщение", "состояние", "сохранить", "список", "справочник",
	"ссылка", "статус", "строка", "структура", "сумма", "таблица",
	"табличная", "текст", "текущий", "тип", "товар", "удалить", "узел",
	"управление", "условие", "установить", "файл", "флаг", "форма",
	"формат", "функциональность", "функция", "хранилище", "цена", "часть",
	"число", "элемент", "этап",
}
