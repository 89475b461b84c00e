package model

import "casino_sim/internal/model"

// Количество линий ставки. Общая ставка = ставка на линию * PaylineCount.
// Линии 4 и 5 не имеют собственной геометрии на барабанах - это два
// независимых бонусных розыгрыша поверх результата (см. BonusChance)
const PaylineCount = 5

// Вероятность срабатывания каждого из двух бонусных розыгрышей
const BonusChance = 0.25

// Множители выплат от ставки на линию. Срабатывает ровно одно
// позиционное правило: тройка, иначе левая пара, иначе правая пара
const (
	TripleMultiplier    = 50
	LeftPairMultiplier  = 5
	RightPairMultiplier = 3
	BonusMultiplier     = 2
)

// SymbolSets Наборы символов по вариантам игры. Каждый барабан - равномерный
// независимый выбор из шести символов активного набора, повторы разрешены
var SymbolSets = map[model.GameVariant][]string{
	model.VariantClassic:     {"🎯", "👑", "💰", "⭐", "🔔", "7️⃣"},
	model.VariantDiamondRush: {"💎", "💍", "🏆", "⚡", "🌟", "💫"},
}
